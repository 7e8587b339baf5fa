// Package report escreve as telas do dashboard como tabelas de texto
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/blumenladen/dashboard/infrastructure/integrator/blumenladen"
	"github.com/blumenladen/dashboard/internal/domain"
	"github.com/blumenladen/dashboard/pkg/format"
)

const unavailable = "keine Daten"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// Version mostra a data da última atualização
func Version(w io.Writer, resp *domain.DateResponse) error {
	if resp == nil || !resp.Success {
		_, err := fmt.Fprintln(w, "Letzte Aktualisierung:", unavailable)
		return err
	}
	_, err := fmt.Fprintln(w, "Letzte Aktualisierung:", format.Date(resp.Date))
	return err
}

// Inventory lista a compra mais recente de cada flor
func Inventory(w io.Writer, rows []blumenladen.InventoryRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, unavailable)
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "Produkt\tDatum\tBunde\tStiele\tEinkauf\tAufschlag\tVerkauf\tKosten")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			row.ProductID,
			format.Date(row.Date),
			row.NBunches,
			row.BunchSize,
			format.Currency(row.Price),
			format.Percentage(row.Percentage),
			format.Currency(row.SalePrice),
			format.Currency(row.Cost),
		)
	}
	return tw.Flush()
}

// Flower mostra o histórico de compras de uma flor
func Flower(w io.Writer, flower *domain.Flower) error {
	if flower == nil {
		_, err := fmt.Fprintln(w, unavailable)
		return err
	}

	if _, err := fmt.Fprintln(w, "Produkt:", flower.ProductID); err != nil {
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "Datum\tMonat\tBunde\tStiele\tEinkauf\tVerkauf\tKosten")
	for _, purchase := range flower.Purchases {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			format.Date(purchase.Date),
			format.MonthShort(purchase.Date),
			purchase.NBunches,
			purchase.BunchSize,
			format.Currency(purchase.Price),
			format.Currency(purchase.SalePrice()),
			format.Currency(purchase.Cost()),
		)
	}
	return tw.Flush()
}

// Costs mostra os custos agrupados e o total do período
func Costs(w io.Writer, report blumenladen.CostReport) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Gruppe (%s)\tKosten\n", report.GroupBy)
	for _, bucket := range report.Buckets {
		fmt.Fprintf(tw, "%s\t%s\n", bucketLabel(report.GroupBy, bucket.GroupBy), format.Currency(bucket.Cost))
	}
	fmt.Fprintf(tw, "Summe\t%s\n", format.Currency(report.Total))
	return tw.Flush()
}

// bucketLabel traduz rótulos de data para o formato de exibição
func bucketLabel(groupBy, label string) string {
	switch groupBy {
	case "date":
		return format.Date(label)
	case "month":
		if formatted := format.Month(label + "-01"); formatted != format.InvalidDate {
			return formatted
		}
	}
	return label
}
