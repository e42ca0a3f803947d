package chart

// Theme collects the fixed styles of the two charts.
type Theme struct {
	HistogramStyle, BarStyle, GridStyle Style
	TitleSize, LabelSize, TickSize      string // in points
}

var DefaultTheme = Theme{
	HistogramStyle: Style{
		"fill":     "tab:blue",
		"color":    "black",
		"size":     "1",
		"linetype": "solid",
	},
	BarStyle: Style{
		"fill":     "tab:orange",
		"color":    "black",
		"size":     "1",
		"linetype": "solid",
	},
	GridStyle: Style{
		"color":    "gray",
		"alpha":    "0.3",
		"size":     "0.8",
		"linetype": "solid",
	},
	TitleSize: "14",
	LabelSize: "11",
	TickSize:  "9",
}
