package config

import (
	"math"
	"sort"
)

// Rule names, also used as diagnostic codes.
const (
	RuleSeeds            = "seeds"
	RuleEnumerators      = "enumerators"
	RuleFields           = "fields"
	RuleStructured       = "structured"
	RuleSortEvalAt       = "sort_eval_at"
	RuleFilterValid      = "filter_valid"
	RuleSaveBinaryTask   = "save_binary_task"
	RuleClassConsistency = "class_consistency"
	RuleParallelism      = "parallelism"
	RuleDataParallel     = "data_parallel"
	RuleDepthLeaves      = "depth_leaves"
	RuleDeviceLayout     = "device_layout"
	RuleLinearTree       = "linear_tree"
	RulePathSmooth       = "path_smooth"
	RuleMonotoneMethod   = "monotone_method"
	RuleMonotonePenalty  = "monotone_penalty"
	RuleStoppingCriteria = "stopping_criteria"
	RuleLegacyGOSS       = "legacy_goss"
	RuleBaggingByQuery   = "bagging_by_query"
)

// Rule is one step of Build. Apply either adjusts c or returns a *FatalError.
type Rule struct {
	Name  string
	Apply func(c *Config, bc *BuildContext) error
}

// Rules returns the build steps in execution order.
func Rules() []Rule {
	return []Rule{
		{RuleSeeds, deriveSeeds},
		{RuleEnumerators, resolveEnumerators},
		{RuleFields, func(c *Config, bc *BuildContext) error { return extractFields(c, bc.params, bc) }},
		{RuleStructured, parseStructured},
		{RuleSortEvalAt, sortEvalAt},
		{RuleFilterValid, filterValid},
		{RuleSaveBinaryTask, saveBinaryTask},
		{RuleClassConsistency, checkClassConsistency},
		{RuleParallelism, normalizeParallelism},
		{RuleDataParallel, checkDataParallel},
		{RuleDepthLeaves, coupleDepthLeaves},
		{RuleDeviceLayout, forceDeviceLayout},
		{RuleLinearTree, checkLinearTree},
		{RulePathSmooth, checkPathSmooth},
		{RuleMonotoneMethod, downgradeMonotoneMethod},
		{RuleMonotonePenalty, checkMonotonePenalty},
		{RuleStoppingCriteria, checkStoppingCriteria},
		{RuleLegacyGOSS, rewriteLegacyGOSS},
		{RuleBaggingByQuery, checkBaggingByQuery},
	}
}

// deriveSeeds fills the sub-seeds from seed. Explicit sub-seeds are applied
// later by the fields rule and override these.
func deriveSeeds(c *Config, bc *BuildContext) error {
	raw, ok := bc.given("seed")
	if !ok {
		return nil
	}
	seed, err := parseInt(raw)
	if err != nil {
		return bc.Fatal(RuleSeeds, "Parameter seed should be of type int, got \"%s\"", raw)
	}
	c.Seed = seed

	rand := NewRandom(seed)
	limit := math.MaxInt16
	c.DataRandomSeed = rand.NextShort(0, limit)
	c.BaggingSeed = rand.NextShort(0, limit)
	c.DropSeed = rand.NextShort(0, limit)
	c.FeatureFractionSeed = rand.NextShort(0, limit)
	c.ObjectiveSeed = rand.NextShort(0, limit)
	c.ExtraSeed = rand.NextShort(0, limit)
	return nil
}

func sortEvalAt(c *Config, _ *BuildContext) error {
	sort.Ints(c.EvalAt)
	return nil
}

// filterValid drops the training file from the validation list and turns on
// training metrics instead.
func filterValid(c *Config, _ *BuildContext) error {
	var kept []string
	for _, v := range c.Valid {
		if v == c.Data {
			c.IsProvideTrainingMetric = true
			continue
		}
		kept = append(kept, v)
	}
	c.Valid = kept
	return nil
}

func saveBinaryTask(c *Config, bc *BuildContext) error {
	if c.Task == TaskSaveBinary && !c.SaveBinary {
		bc.Info(RuleSaveBinaryTask, "save_binary parameter set to true because task is save_binary")
		c.SaveBinary = true
	}
	return nil
}

func checkClassConsistency(c *Config, bc *BuildContext) error {
	multiclass := c.IsMulticlassObjective()
	if multiclass {
		if c.NumClass <= 1 {
			return bc.Fatal(RuleClassConsistency, "Number of classes should be specified and greater than 1 for multiclass training")
		}
	} else if c.Task == TaskTrain && c.NumClass != 1 {
		return bc.Fatal(RuleClassConsistency, "Number of classes must be 1 for non-multiclass training")
	}
	for _, metric := range c.Metric {
		if multiclass != c.IsMulticlassMetric(metric) {
			return bc.Fatal(RuleClassConsistency, "Multiclass objective and metrics don't match")
		}
	}
	return nil
}

func normalizeParallelism(c *Config, _ *BuildContext) error {
	if c.NumMachines > 1 {
		c.IsParallel = true
	} else {
		c.IsParallel = false
		c.TreeLearner = LearnerSerial
	}
	if c.TreeLearner == LearnerSerial {
		c.IsParallel = false
		c.NumMachines = 1
	}
	return nil
}

func checkDataParallel(c *Config, bc *BuildContext) error {
	switch c.TreeLearner {
	case LearnerData, LearnerVoting:
		c.IsDataBasedParallel = true
		if c.TreeLearner == LearnerData && c.HistogramPoolSize >= 0 {
			bc.Warn(RuleDataParallel, "Histogram LRU queue was enabled (histogram_pool_size=%f).\nWill disable this to reduce communication costs", c.HistogramPoolSize)
			c.HistogramPoolSize = -1
		}
	default:
		c.IsDataBasedParallel = false
	}
	if c.IsDataBasedParallel && c.ForcedSplitsFilename != "" {
		return bc.Fatal(RuleDataParallel, "Don't support forcedsplits in %s tree learner", c.TreeLearner)
	}
	return nil
}

// coupleDepthLeaves keeps num_leaves reachable when only max_depth was given.
func coupleDepthLeaves(c *Config, bc *BuildContext) error {
	if c.MaxDepth <= 0 {
		return nil
	}
	if _, given := bc.given("num_leaves"); given {
		return nil
	}
	full := math.Pow(2, float64(c.MaxDepth))
	if full > float64(c.NumLeaves) {
		bc.Warn(RuleDepthLeaves, "Provided parameters constrain tree depth (max_depth=%d) without explicitly setting 'num_leaves'. "+
			"This can lead to underfitting. To resolve this warning, pass 'num_leaves' (<=%.0f) in params. "+
			"Alternatively, pass (max_depth=-1) and just use 'num_leaves' to constrain model complexity.",
			c.MaxDepth, full)
	}
	if full < float64(c.NumLeaves) {
		c.NumLeaves = int(full)
	}
	return nil
}

func forceDeviceLayout(c *Config, bc *BuildContext) error {
	switch c.DeviceType {
	case DeviceTypeGPU:
		c.ForceColWise = true
		c.ForceRowWise = false
		if c.Deterministic {
			bc.Warn(RuleDeviceLayout, "Although \"deterministic\" is set, the results ran by GPU may be non-deterministic.")
		}
		if c.UseQuantizedGrad {
			bc.Warn(RuleDeviceLayout, "Quantized training is not supported by GPU tree learner. Switch to full precision training.")
			c.UseQuantizedGrad = false
		}
	case DeviceTypeCUDA:
		c.ForceColWise = false
		c.ForceRowWise = true
		if c.Deterministic {
			bc.Warn(RuleDeviceLayout, "Although \"deterministic\" is set, the results ran by GPU may be non-deterministic.")
		}
	}
	return nil
}

func checkLinearTree(c *Config, bc *BuildContext) error {
	if !c.LinearTree {
		return nil
	}
	if c.DeviceType != DeviceTypeCPU && c.DeviceType != DeviceTypeGPU {
		c.DeviceType = DeviceTypeCPU
		bc.Warn(RuleLinearTree, "Linear tree learner only works with CPU and GPU. Falling back to CPU now.")
	}
	if c.TreeLearner != LearnerSerial {
		c.TreeLearner = LearnerSerial
		bc.Warn(RuleLinearTree, "Linear tree learner must be serial.")
	}
	if c.ZeroAsMissing {
		return bc.Fatal(RuleLinearTree, "zero_as_missing must be false when fitting linear trees.")
	}
	if c.Objective == "regression_l1" {
		return bc.Fatal(RuleLinearTree, "Cannot use regression_l1 objective when fitting linear trees.")
	}
	return nil
}

func checkPathSmooth(c *Config, bc *BuildContext) error {
	if c.PathSmooth > kEpsilon && c.MinDataInLeaf < 2 {
		c.MinDataInLeaf = 2
		bc.Warn(RulePathSmooth, "min_data_in_leaf has been increased to 2 because this is required when path smoothing is active.")
	}
	return nil
}

func downgradeMonotoneMethod(c *Config, bc *BuildContext) error {
	advanced := func() bool {
		return c.MonotoneConstraintsMethod == MonotoneIntermediate || c.MonotoneConstraintsMethod == MonotoneAdvanced
	}
	if c.IsParallel && advanced() {
		bc.Warn(RuleMonotoneMethod, "Cannot use \"intermediate\" or \"advanced\" monotone constraints in distributed learning, auto set to \"basic\" method.")
		c.MonotoneConstraintsMethod = MonotoneBasic
	}
	if c.FeatureFractionByNode != 1.0 && advanced() {
		bc.Warn(RuleMonotoneMethod, "Cannot use \"intermediate\" or \"advanced\" monotone constraints with feature fraction different from 1, auto set monotone constraints to \"basic\" method.")
		c.MonotoneConstraintsMethod = MonotoneBasic
	}
	return nil
}

func checkMonotonePenalty(c *Config, bc *BuildContext) error {
	if c.MaxDepth > 0 && c.MonotonePenalty >= float64(c.MaxDepth) {
		bc.Warn(RuleMonotonePenalty, "Monotone penalty greater than tree depth. Monotone features won't be used.")
	}
	return nil
}

func checkStoppingCriteria(c *Config, bc *BuildContext) error {
	if c.MinDataInLeaf <= 0 && c.MinSumHessianInLeaf <= kEpsilon {
		bc.Warn(RuleStoppingCriteria, "Cannot set both min_data_in_leaf and min_sum_hessian_in_leaf to 0. Will set min_data_in_leaf to 1.")
		c.MinDataInLeaf = 1
	}
	return nil
}

func rewriteLegacyGOSS(c *Config, bc *BuildContext) error {
	if c.Boosting == BoostingGOSS {
		c.Boosting = BoostingGBDT
		c.DataSampleStrategy = StrategyGOSS
		bc.Warn(RuleLegacyGOSS, "Found boosting=goss. For backwards compatibility reasons, LightGBM interprets this as boosting=gbdt, data_sample_strategy=goss. "+
			"To suppress this warning, set data_sample_strategy=goss instead.")
	}
	return nil
}

func checkBaggingByQuery(c *Config, bc *BuildContext) error {
	if c.BaggingByQuery && c.DataSampleStrategy != StrategyBagging {
		bc.Warn(RuleBaggingByQuery, "bagging_by_query=true is only compatible with data_sample_strategy=bagging. Setting bagging_by_query=false.")
		c.BaggingByQuery = false
	}
	return nil
}
