package domain

// DateResponse carrega a data da última atualização do serviço.
// Success é preenchido pelo cliente; o serviço não é consistente na grafia do campo.
type DateResponse struct {
	Date    string `json:"date"`
	Success bool   `json:"-"`
}
