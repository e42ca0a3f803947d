// Goalstats describes the goals scored in a football season.
//
// # Data Representation
//
// A Dataset is a "slice of measurements": one Team per entity, each
// carrying a single numeric observation, the goals scored.
//
//	type Team struct {
//	    Name  string
//	    Goals int
//	}
//
// Statistics work on the plain observation sequence returned by
// Dataset.Goals; names only matter for tables and the bar chart.
//
// # Packages
//
//	stat      frequency tables and order statistics
//	chart     histogram and bar chart rendering (gonum/plot)
//	export    CSV and xlsx writers
//	deck      slide deck composition and PDF rendering
//
// The batch pipeline tying these together lives in internal/report and
// is driven by cmd/goalstats.
package goalstats
