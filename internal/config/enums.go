package config

import (
	"strings"

	"github.com/harrison/boostcfg/internal/alias"
)

var taskTags = map[string]TaskType{
	"train":         TaskTrain,
	"training":      TaskTrain,
	"predict":       TaskPredict,
	"prediction":    TaskPredict,
	"test":          TaskPredict,
	"convert_model": TaskConvertModel,
	"refit":         TaskRefit,
	"refit_tree":    TaskRefit,
	"save_binary":   TaskSaveBinary,
}

var boostingTags = map[string]string{
	"gbdt":          BoostingGBDT,
	"gbrt":          BoostingGBDT,
	"dart":          BoostingDART,
	"goss":          BoostingGOSS,
	"rf":            BoostingRF,
	"random_forest": BoostingRF,
}

var strategyTags = map[string]string{
	"goss":    StrategyGOSS,
	"bagging": StrategyBagging,
}

var deviceTags = map[string]string{
	"cpu":  DeviceTypeCPU,
	"gpu":  DeviceTypeGPU,
	"cuda": DeviceTypeCUDA,
}

var learnerTags = map[string]string{
	"serial":           LearnerSerial,
	"feature":          LearnerFeature,
	"feature_parallel": LearnerFeature,
	"data":             LearnerData,
	"data_parallel":    LearnerData,
	"voting":           LearnerVoting,
	"voting_parallel":  LearnerVoting,
}

var monotoneTags = map[string]string{
	"basic":        MonotoneBasic,
	"intermediate": MonotoneIntermediate,
	"advanced":     MonotoneAdvanced,
}

// resolveEnumerators maps the categorical parameters to canonical tags.
// Device runs before tree learner; metric runs after objective because it
// may default from it.
func resolveEnumerators(c *Config, bc *BuildContext) error {
	steps := []func(*Config, *BuildContext) error{
		resolveTask,
		resolveBoosting,
		resolveStrategy,
		resolveObjective,
		resolveMetric,
		resolveDevice,
		resolveTreeLearner,
		resolveMonotoneMethod,
	}
	for _, step := range steps {
		if err := step(c, bc); err != nil {
			return err
		}
	}
	return nil
}

// lowered returns the lowercased value of key when it is given.
func lowered(bc *BuildContext, key string) (string, bool) {
	v, ok := bc.given(key)
	if !ok {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(v)), true
}

func resolveTask(c *Config, bc *BuildContext) error {
	v, ok := lowered(bc, "task")
	if !ok {
		return nil
	}
	task, known := taskTags[v]
	if !known {
		return bc.Fatal(RuleEnumerators, "Unknown task type %s", v)
	}
	c.Task = task
	return nil
}

func resolveBoosting(c *Config, bc *BuildContext) error {
	return resolveTag(bc, "boosting", "Unknown boosting type %s", boostingTags, &c.Boosting)
}

func resolveStrategy(c *Config, bc *BuildContext) error {
	return resolveTag(bc, "data_sample_strategy", "Unknown sample strategy %s", strategyTags, &c.DataSampleStrategy)
}

func resolveDevice(c *Config, bc *BuildContext) error {
	if err := resolveTag(bc, "device_type", "Unknown device type %s", deviceTags, &c.DeviceType); err != nil {
		return err
	}
	if c.DeviceType == DeviceTypeCUDA {
		bc.Device = DeviceCUDA
	}
	return nil
}

func resolveTreeLearner(c *Config, bc *BuildContext) error {
	return resolveTag(bc, "tree_learner", "Unknown tree learner type %s", learnerTags, &c.TreeLearner)
}

func resolveMonotoneMethod(c *Config, bc *BuildContext) error {
	return resolveTag(bc, "monotone_constraints_method", "Unknown monotone constraints method %s", monotoneTags, &c.MonotoneConstraintsMethod)
}

func resolveTag(bc *BuildContext, key, unknown string, tags map[string]string, dst *string) error {
	v, ok := lowered(bc, key)
	if !ok {
		return nil
	}
	tag, known := tags[v]
	if !known {
		return bc.Fatal(RuleEnumerators, unknown, v)
	}
	*dst = tag
	return nil
}

func resolveObjective(c *Config, bc *BuildContext) error {
	v, ok := lowered(bc, "objective")
	if !ok {
		return nil
	}
	objective := alias.ObjectiveAlias(v)
	if !alias.IsKnownObjective(objective) {
		return bc.Fatal(RuleEnumerators, "Unknown objective type %s", v)
	}
	c.Objective = objective
	return nil
}

// resolveMetric parses the metric list. Only an absent or empty metric value
// falls back to the objective; "metric=," deliberately yields no metrics.
func resolveMetric(c *Config, bc *BuildContext) error {
	raw, ok := lowered(bc, "metric")
	if ok {
		metrics, err := parseMetrics(raw, bc)
		if err != nil {
			return err
		}
		c.Metric = metrics
	}
	if len(c.Metric) == 0 && raw == "" {
		metrics, err := parseMetrics(c.Objective, bc)
		if err != nil {
			return err
		}
		c.Metric = metrics
	}
	return nil
}

func parseMetrics(text string, bc *BuildContext) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, item := range splitList(text) {
		metric := alias.MetricAlias(item)
		if !alias.IsKnownMetric(metric) {
			return nil, bc.Fatal(RuleEnumerators, "Unknown metric type %s", item)
		}
		if seen[metric] {
			continue
		}
		seen[metric] = true
		out = append(out, metric)
	}
	return out, nil
}
