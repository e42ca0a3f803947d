// Package deck composes the slide deck presenting the analysis and
// renders it as a multi-page PDF, one page per slide.
package deck

import (
	"fmt"
	"strconv"

	"github.com/vdobler/goalstats"
	"github.com/vdobler/goalstats/export"
	"github.com/vdobler/goalstats/stat"
)

// Layout determines how a slide is drawn.
type Layout int

const (
	// TitleLayout centers a large title and a subtitle.
	TitleLayout Layout = iota
	// ContentLayout has a title on top and bullets or a table below.
	ContentLayout
	// TitleOnlyLayout has a title on top and free space for an image.
	TitleOnlyLayout
)

// Slide is a single page of a Deck. Only the fields used by its Layout
// are drawn.
type Slide struct {
	Layout   Layout
	Title    string
	Subtitle string
	Bullets  []string
	Table    *Table
	Image    string // path to a PNG or JPEG file
}

// Table is a grid of text cells with a header row.
type Table struct {
	Header []string
	Rows   [][]string
}

// Deck is an ordered list of slides.
type Deck struct {
	Title  string
	Slides []Slide
}

// Titles returns the titles of all slides in order.
func (d Deck) Titles() []string {
	titles := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		titles[i] = s.Title
	}
	return titles
}

// Input is everything the deck reports on.
type Input struct {
	Dataset       goalstats.Dataset
	Table         *stat.FrequencyTable
	Summary       stat.Summary
	HistogramPath string
	BarsPath      string
}

// Compose builds the ten slides of the presentation: title, introduction,
// data collection, raw data, frequency table, histogram, bar chart,
// statistics, conclusion and closing.
func Compose(in Input) Deck {
	ds, s := in.Dataset, in.Summary
	title := "Gols no " + ds.Title

	raw := &Table{Header: []string{"Time", "Gols"}}
	for _, t := range ds.ByName() {
		raw.Rows = append(raw.Rows, []string{t.Name, strconv.Itoa(t.Goals)})
	}

	freq := &Table{Header: append([]string(nil), stat.Columns...)}
	if in.Table != nil {
		freq.Rows = export.FrequencyRecords(in.Table)
	}

	// Half of the teams lie between the quartiles.
	conclusion := []string{fmt.Sprintf("Os gols concentram-se entre %s e %s tentos.",
		export.FormatFloat(s.Q1), export.FormatFloat(s.Q3))}
	if teams := ds.ByGoals(); len(teams) > 0 {
		conclusion = append(conclusion,
			fmt.Sprintf("Destaca-se a performance do %s (%d gols).", teams[0].Name, teams[0].Goals))
	}

	return Deck{
		Title: title,
		Slides: []Slide{
			{Layout: TitleLayout, Title: title, Subtitle: "Análise estatística"},
			{Layout: ContentLayout, Title: "Introdução", Bullets: []string{
				"Tema: Número de gols marcados no Campeonato Brasileiro de 2011",
				"Objetivo: Descrever e interpretar a distribuição de gols por equipe",
			}},
			{Layout: ContentLayout, Title: "Coleta de Dados", Bullets: []string{
				"Fonte: " + ds.Source,
				fmt.Sprintf("%d observações (uma por equipe)", ds.N()),
			}},
			{Layout: ContentLayout, Title: "Tabela Original", Table: raw},
			{Layout: ContentLayout, Title: "Tabela de Frequências", Table: freq},
			{Layout: TitleOnlyLayout, Title: "Histograma", Image: in.HistogramPath},
			{Layout: TitleOnlyLayout, Title: "Gráfico de Colunas", Image: in.BarsPath},
			{Layout: ContentLayout, Title: "Medidas Estatísticas", Bullets: []string{
				fmt.Sprintf("Média: %.2f", s.Mean),
				"Moda: " + export.FormatFloat(s.Mode),
				fmt.Sprintf("Mediana (Q2): %.2f", s.Median),
				fmt.Sprintf("Q1: %.2f", s.Q1),
				fmt.Sprintf("Q3: %.2f", s.Q3),
			}},
			{Layout: ContentLayout, Title: "Conclusão", Bullets: conclusion},
			{Layout: ContentLayout, Title: "Encerramento", Bullets: []string{"Obrigado!"}},
		},
	}
}
