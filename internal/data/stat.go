package data

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Stat identifies a battle stat that carries a stage (−6..+6).
type Stat uint8

const (
	StatAtk Stat = iota
	StatDfe
	StatSpd
	StatAts
	StatDfs
	StatAcc
	StatEva

	StatCount = 7
)

var statNames = [StatCount]string{"atk", "dfe", "spd", "ats", "dfs", "acc", "eva"}

func (s Stat) String() string {
	if int(s) < StatCount {
		return statNames[s]
	}
	return "unknown"
}

// ParseStat resolves a stat symbol. Returns false for unknown names.
func ParseStat(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return 0, false
}

// UnmarshalYAML accepts stat symbols ("atk", "spd"...) in data files.
func (s *Stat) UnmarshalYAML(value *yaml.Node) error {
	stat, ok := ParseStat(value.Value)
	if !ok {
		return fmt.Errorf("unknown stat %q", value.Value)
	}
	*s = stat
	return nil
}

// BaseStats holds the base stats of a species.
type BaseStats struct {
	HP  int `yaml:"hp"`
	Atk int `yaml:"atk"`
	Dfe int `yaml:"dfe"`
	Ats int `yaml:"ats"`
	Dfs int `yaml:"dfs"`
	Spd int `yaml:"spd"`
}

// CalcHP returns max HP at the given level (IV 31, EV 0).
func CalcHP(base, level int) int {
	return (2*base+31)*level/100 + level + 10
}

// CalcStat returns a non-HP stat at the given level (IV 31, EV 0, neutral nature).
func CalcStat(base, level int) int {
	return (2*base+31)*level/100 + 5
}
