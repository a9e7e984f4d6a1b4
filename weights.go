package hashring

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWeights parses a comma-separated weight list in the format:
// "target1=weight1,target2=weight2"
// A weight of zero is allowed; passed to SetWeights it removes the target.
func ParseWeights(weightsStr string) (map[string]int, error) {
	weights := make(map[string]int)
	if weightsStr == "" {
		return weights, nil
	}

	for _, part := range strings.Split(weightsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid weight format: %s (expected target=weight)", part)
		}

		target := strings.TrimSpace(kv[0])
		raw := strings.TrimSpace(kv[1])

		if target == "" || raw == "" {
			return nil, fmt.Errorf("target and weight cannot be empty: %s", part)
		}

		weight, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid weight for target %s: %w", target, err)
		}
		if weight < 0 {
			return nil, fmt.Errorf("%w: target %q has weight %d", ErrNegativeWeight, target, weight)
		}

		weights[target] = weight
	}

	return weights, nil
}
