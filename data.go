package goalstats

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
)

// Team is a single observation: the goals scored by one team.
type Team struct {
	Name  string `yaml:"team"`
	Goals int    `yaml:"goals"`
}

// Dataset is an ordered collection of teams.
type Dataset struct {
	Title  string `yaml:"title"`
	Source string `yaml:"source"`
	Teams  []Team `yaml:"teams"`
}

// Brasileirao2011 returns the goals scored by the 20 clubs of the 2011
// Brazilian championship.
func Brasileirao2011() Dataset {
	return Dataset{
		Title:  "Campeonato Brasileiro 2011",
		Source: "tabela oficial do Brasileirão 2011",
		Teams: []Team{
			{"Corinthians", 53},
			{"Vasco", 57},
			{"Fluminense", 60},
			{"Flamengo", 57},
			{"Internacional", 57},
			{"São Paulo", 57},
			{"Figueirense", 46},
			{"Coritiba", 57},
			{"Botafogo", 52},
			{"Santos", 55},
			{"Palmeiras", 43},
			{"Grêmio", 49},
			{"Atlético-GO", 50},
			{"Bahia", 43},
			{"Atlético-MG", 50},
			{"Cruzeiro", 48},
			{"Athletico-PR", 38},
			{"Ceará", 47},
			{"América-MG", 51},
			{"Avaí", 45},
		},
	}
}

// N is the number of observations.
func (d Dataset) N() int { return len(d.Teams) }

// Goals returns the observations in dataset order.
func (d Dataset) Goals() []float64 {
	goals := make([]float64, len(d.Teams))
	for i, t := range d.Teams {
		goals[i] = float64(t.Goals)
	}
	return goals
}

// ByName returns a copy of the teams sorted by name.
func (d Dataset) ByName() []Team {
	teams := d.copyTeams()
	sort.SliceStable(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams
}

// ByGoals returns a copy of the teams sorted by goals, most goals first.
// Teams with equal goals keep their dataset order.
func (d Dataset) ByGoals() []Team {
	teams := d.copyTeams()
	sort.SliceStable(teams, func(i, j int) bool { return teams[i].Goals > teams[j].Goals })
	return teams
}

func (d Dataset) copyTeams() []Team {
	teams := make([]Team, len(d.Teams))
	copy(teams, d.Teams)
	return teams
}

// Validate checks that d has at least one team, that names are non-empty
// and unique and that no team scored a negative number of goals.
func (d Dataset) Validate() error {
	if len(d.Teams) == 0 {
		return fmt.Errorf("dataset %q has no teams", d.Title)
	}
	seen := make(map[string]bool, len(d.Teams))
	for i, t := range d.Teams {
		if t.Name == "" {
			return fmt.Errorf("team %d has no name", i+1)
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate team %q", t.Name)
		}
		seen[t.Name] = true
		if t.Goals < 0 {
			return fmt.Errorf("team %q has negative goals %d", t.Name, t.Goals)
		}
	}
	return nil
}

// LoadDataset reads a YAML dataset of the form
//
//	title: Campeonato Brasileiro 2011
//	source: tabela oficial
//	teams:
//	  - team: Corinthians
//	    goals: 53
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	var d Dataset
	if err := yaml.UnmarshalStrict(data, &d); err != nil {
		return Dataset{}, fmt.Errorf("cannot parse dataset %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("invalid dataset %s: %w", path, err)
	}
	return d, nil
}
