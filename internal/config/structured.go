package config

import (
	"fmt"
	"math"
	"strings"
)

// parseStructured derives the values that are built from other fields.
func parseStructured(c *Config, bc *BuildContext) error {
	if err := parseAucMuWeights(c, bc); err != nil {
		return err
	}

	var err error
	c.InteractionConstraintsVector, err = ParseArrayOfArrays(c.InteractionConstraints)
	if err != nil {
		return bc.Fatal(RuleStructured, "Parameter interaction_constraints is malformed: %v", err)
	}
	c.TreeInteractionConstraintsVector, err = ParseArrayOfArrays(c.TreeInteractionConstraints)
	if err != nil {
		return bc.Fatal(RuleStructured, "Parameter tree_interaction_constraints is malformed: %v", err)
	}
	return nil
}

// parseAucMuWeights expands the flat auc_mu_weights list into a
// NumClass x NumClass matrix with a zero diagonal.
func parseAucMuWeights(c *Config, bc *BuildContext) error {
	n := c.NumClass
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	if len(c.AucMuWeights) == 0 {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					matrix[i][j] = 1
				}
			}
		}
		c.AucMuWeightsMatrix = matrix
		return nil
	}

	if len(c.AucMuWeights) != n*n {
		return bc.Fatal(RuleStructured, "auc_mu_weights must have %d elements, but found %d", n*n, len(c.AucMuWeights))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pos := i*n + j
			w := c.AucMuWeights[pos]
			if i == j {
				if math.Abs(w) > kZeroThreshold {
					bc.Info(RuleStructured, "AUC-mu matrix must have zeros on diagonal. Overwriting value in position %d of auc_mu_weights with 0.", pos)
				}
				continue
			}
			if math.Abs(w) < kZeroThreshold {
				return bc.Fatal(RuleStructured, "AUC-mu matrix must have non-zero values for non-diagonal entries. Found zero value in position %d of auc_mu_weights.", pos)
			}
			matrix[i][j] = w
		}
	}
	c.AucMuWeightsMatrix = matrix
	return nil
}

// ParseArrayOfArrays parses text such as "[[0,1],[2,3,4]]" into nested int
// slices. Whitespace is ignored and empty text yields an empty result.
func ParseArrayOfArrays(text string) ([][]int, error) {
	s := strings.Join(strings.Fields(text), "")
	if s == "" {
		return [][]int{}, nil
	}
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("expected outer brackets in %q", text)
	}

	out := [][]int{}
	inner := s[1 : len(s)-1]
	for inner != "" {
		if inner[0] != '[' {
			return nil, fmt.Errorf("expected '[' at %q", inner)
		}
		end := strings.IndexByte(inner, ']')
		if end < 0 {
			return nil, fmt.Errorf("unclosed '[' in %q", text)
		}
		body := inner[1:end]
		if strings.ContainsAny(body, "[") {
			return nil, fmt.Errorf("nested '[' in %q", text)
		}

		group := []int{}
		if body != "" {
			for _, item := range strings.Split(body, ",") {
				v, err := parseInt(item)
				if err != nil {
					return nil, fmt.Errorf("%q is not an integer", item)
				}
				group = append(group, v)
			}
		}
		out = append(out, group)

		inner = inner[end+1:]
		if inner == "" {
			break
		}
		if inner[0] != ',' || len(inner) == 1 {
			return nil, fmt.Errorf("expected ',' between groups in %q", text)
		}
		inner = inner[1:]
	}
	return out, nil
}
