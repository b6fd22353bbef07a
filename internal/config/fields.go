package config

import (
	"fmt"
	"strings"
)

// Kind is the value type of a parameter.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindIntList
	KindFloatList
	KindStringList
	// KindEnum fields are resolved by the enumerators, not the typed extractor.
	KindEnum
)

// String returns the type name used in messages and the parameter reference.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "double"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindIntList:
		return "multi-int"
	case KindFloatList:
		return "multi-double"
	case KindStringList:
		return "multi-string"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// bound is one numeric constraint on a parameter value.
type bound struct {
	desc string
	ok   func(v float64) bool
}

func gt(x float64) bound { return bound{fmt.Sprintf("> %g", x), func(v float64) bool { return v > x }} }
func gte(x float64) bound {
	return bound{fmt.Sprintf(">= %g", x), func(v float64) bool { return v >= x }}
}
func lt(x float64) bound { return bound{fmt.Sprintf("< %g", x), func(v float64) bool { return v < x }} }
func lte(x float64) bound {
	return bound{fmt.Sprintf("<= %g", x), func(v float64) bool { return v <= x }}
}

// Field describes one parameter: its type, its default and where it lives in Config.
type Field struct {
	Name    string
	Kind    Kind
	Default string

	bounds []bound
	bind   func(*Config) any
}

// Bounds renders the constraints, e.g. "> 1 && <= 131072". Empty when unconstrained.
func (f Field) Bounds() string {
	parts := make([]string, len(f.bounds))
	for i, b := range f.bounds {
		parts[i] = b.desc
	}
	return strings.Join(parts, " && ")
}

// violated returns the first bound v does not satisfy.
func (f Field) violated(v float64) (bound, bool) {
	for _, b := range f.bounds {
		if !b.ok(v) {
			return b, true
		}
	}
	return bound{}, false
}

// reset stores the default value.
func (f Field) reset(c *Config) {
	switch ptr := f.bind(c).(type) {
	case *TaskType:
		*ptr = TaskType(f.Default)
	case *[]string:
		*ptr = splitList(f.Default)
	default:
		if err := f.set(c, f.Default); err != nil {
			panic(fmt.Sprintf("config: bad default for %s: %v", f.Name, err))
		}
	}
}

func intField(name, def string, bind func(*Config) *int, bounds ...bound) Field {
	return Field{Name: name, Kind: KindInt, Default: def, bounds: bounds, bind: func(c *Config) any { return bind(c) }}
}

func floatField(name, def string, bind func(*Config) *float64, bounds ...bound) Field {
	return Field{Name: name, Kind: KindFloat, Default: def, bounds: bounds, bind: func(c *Config) any { return bind(c) }}
}

func boolField(name, def string, bind func(*Config) *bool) Field {
	return Field{Name: name, Kind: KindBool, Default: def, bind: func(c *Config) any { return bind(c) }}
}

func stringField(name, def string, bind func(*Config) *string) Field {
	return Field{Name: name, Kind: KindString, Default: def, bind: func(c *Config) any { return bind(c) }}
}

func intListField(name string, bind func(*Config) *[]int, bounds ...bound) Field {
	return Field{Name: name, Kind: KindIntList, bounds: bounds, bind: func(c *Config) any { return bind(c) }}
}

func floatListField(name string, bind func(*Config) *[]float64, bounds ...bound) Field {
	return Field{Name: name, Kind: KindFloatList, bounds: bounds, bind: func(c *Config) any { return bind(c) }}
}

func stringListField(name string, bind func(*Config) *[]string) Field {
	return Field{Name: name, Kind: KindStringList, bind: func(c *Config) any { return bind(c) }}
}

func enumField(name, def string, bind func(*Config) any) Field {
	return Field{Name: name, Kind: KindEnum, Default: def, bind: bind}
}

// fields is the descriptor table, in reference order.
var fields = []Field{
	stringField("config", "", func(c *Config) *string { return &c.ConfigFile }),
	enumField("task", string(TaskTrain), func(c *Config) any { return &c.Task }),
	enumField("objective", "regression", func(c *Config) any { return &c.Objective }),
	enumField("boosting", BoostingGBDT, func(c *Config) any { return &c.Boosting }),
	enumField("data_sample_strategy", StrategyBagging, func(c *Config) any { return &c.DataSampleStrategy }),
	stringField("data", "", func(c *Config) *string { return &c.Data }),
	stringListField("valid", func(c *Config) *[]string { return &c.Valid }),
	intField("num_iterations", "100", func(c *Config) *int { return &c.NumIterations }, gte(0)),
	floatField("learning_rate", "0.1", func(c *Config) *float64 { return &c.LearningRate }, gt(0)),
	intField("num_leaves", "31", func(c *Config) *int { return &c.NumLeaves }, gt(1), lte(131072)),
	enumField("tree_learner", LearnerSerial, func(c *Config) any { return &c.TreeLearner }),
	intField("num_threads", "0", func(c *Config) *int { return &c.NumThreads }),
	enumField("device_type", DeviceTypeCPU, func(c *Config) any { return &c.DeviceType }),
	intField("seed", "0", func(c *Config) *int { return &c.Seed }),
	boolField("deterministic", "false", func(c *Config) *bool { return &c.Deterministic }),

	boolField("force_col_wise", "false", func(c *Config) *bool { return &c.ForceColWise }),
	boolField("force_row_wise", "false", func(c *Config) *bool { return &c.ForceRowWise }),
	floatField("histogram_pool_size", "-1", func(c *Config) *float64 { return &c.HistogramPoolSize }),
	intField("max_depth", "-1", func(c *Config) *int { return &c.MaxDepth }),
	intField("min_data_in_leaf", "20", func(c *Config) *int { return &c.MinDataInLeaf }, gte(0)),
	floatField("min_sum_hessian_in_leaf", "0.001", func(c *Config) *float64 { return &c.MinSumHessianInLeaf }, gte(0)),
	floatField("bagging_fraction", "1", func(c *Config) *float64 { return &c.BaggingFraction }, gt(0), lte(1)),
	floatField("pos_bagging_fraction", "1", func(c *Config) *float64 { return &c.PosBaggingFraction }, gt(0), lte(1)),
	floatField("neg_bagging_fraction", "1", func(c *Config) *float64 { return &c.NegBaggingFraction }, gt(0), lte(1)),
	intField("bagging_freq", "0", func(c *Config) *int { return &c.BaggingFreq }),
	intField("bagging_seed", "3", func(c *Config) *int { return &c.BaggingSeed }),
	boolField("bagging_by_query", "false", func(c *Config) *bool { return &c.BaggingByQuery }),
	floatField("feature_fraction", "1", func(c *Config) *float64 { return &c.FeatureFraction }, gt(0), lte(1)),
	floatField("feature_fraction_bynode", "1", func(c *Config) *float64 { return &c.FeatureFractionByNode }, gt(0), lte(1)),
	intField("feature_fraction_seed", "2", func(c *Config) *int { return &c.FeatureFractionSeed }),
	boolField("extra_trees", "false", func(c *Config) *bool { return &c.ExtraTrees }),
	intField("extra_seed", "6", func(c *Config) *int { return &c.ExtraSeed }),
	intField("early_stopping_round", "0", func(c *Config) *int { return &c.EarlyStoppingRound }),
	floatField("early_stopping_min_delta", "0", func(c *Config) *float64 { return &c.EarlyStoppingMinDelta }, gte(0)),
	boolField("first_metric_only", "false", func(c *Config) *bool { return &c.FirstMetricOnly }),
	floatField("max_delta_step", "0", func(c *Config) *float64 { return &c.MaxDeltaStep }),
	floatField("lambda_l1", "0", func(c *Config) *float64 { return &c.LambdaL1 }, gte(0)),
	floatField("lambda_l2", "0", func(c *Config) *float64 { return &c.LambdaL2 }, gte(0)),
	floatField("linear_lambda", "0", func(c *Config) *float64 { return &c.LinearLambda }, gte(0)),
	floatField("min_gain_to_split", "0", func(c *Config) *float64 { return &c.MinGainToSplit }, gte(0)),
	floatField("drop_rate", "0.1", func(c *Config) *float64 { return &c.DropRate }, gte(0), lte(1)),
	intField("max_drop", "50", func(c *Config) *int { return &c.MaxDrop }),
	floatField("skip_drop", "0.5", func(c *Config) *float64 { return &c.SkipDrop }, gte(0), lte(1)),
	boolField("xgboost_dart_mode", "false", func(c *Config) *bool { return &c.XGBoostDartMode }),
	boolField("uniform_drop", "false", func(c *Config) *bool { return &c.UniformDrop }),
	intField("drop_seed", "4", func(c *Config) *int { return &c.DropSeed }),
	floatField("top_rate", "0.2", func(c *Config) *float64 { return &c.TopRate }, gte(0), lte(1)),
	floatField("other_rate", "0.1", func(c *Config) *float64 { return &c.OtherRate }, gte(0), lte(1)),
	intField("min_data_per_group", "100", func(c *Config) *int { return &c.MinDataPerGroup }, gt(0)),
	intField("max_cat_threshold", "32", func(c *Config) *int { return &c.MaxCatThreshold }, gt(0)),
	floatField("cat_l2", "10", func(c *Config) *float64 { return &c.CatL2 }, gte(0)),
	floatField("cat_smooth", "10", func(c *Config) *float64 { return &c.CatSmooth }, gte(0)),
	intField("max_cat_to_onehot", "4", func(c *Config) *int { return &c.MaxCatToOnehot }, gt(0)),
	intField("top_k", "20", func(c *Config) *int { return &c.TopK }, gt(0)),
	intListField("monotone_constraints", func(c *Config) *[]int { return &c.MonotoneConstraints }, gte(-1), lte(1)),
	enumField("monotone_constraints_method", MonotoneBasic, func(c *Config) any { return &c.MonotoneConstraintsMethod }),
	floatField("monotone_penalty", "0", func(c *Config) *float64 { return &c.MonotonePenalty }, gte(0)),
	floatListField("feature_contri", func(c *Config) *[]float64 { return &c.FeatureContri }),
	stringField("forcedsplits_filename", "", func(c *Config) *string { return &c.ForcedSplitsFilename }),
	floatField("refit_decay_rate", "0.9", func(c *Config) *float64 { return &c.RefitDecayRate }, gte(0), lte(1)),
	floatField("cegb_tradeoff", "1", func(c *Config) *float64 { return &c.CEGBTradeoff }, gte(0)),
	floatField("cegb_penalty_split", "0", func(c *Config) *float64 { return &c.CEGBPenaltySplit }, gte(0)),
	floatListField("cegb_penalty_feature_lazy", func(c *Config) *[]float64 { return &c.CEGBPenaltyFeatureLazy }),
	floatListField("cegb_penalty_feature_coupled", func(c *Config) *[]float64 { return &c.CEGBPenaltyFeatureCoupled }),
	floatField("path_smooth", "0", func(c *Config) *float64 { return &c.PathSmooth }, gte(0)),
	stringField("interaction_constraints", "", func(c *Config) *string { return &c.InteractionConstraints }),
	stringField("tree_interaction_constraints", "", func(c *Config) *string { return &c.TreeInteractionConstraints }),
	intField("verbosity", "1", func(c *Config) *int { return &c.Verbosity }),
	stringField("input_model", "", func(c *Config) *string { return &c.InputModel }),
	stringField("output_model", "LightGBM_model.txt", func(c *Config) *string { return &c.OutputModel }),
	intField("saved_feature_importance_type", "0", func(c *Config) *int { return &c.SavedFeatureImportanceType }, gte(0), lte(1)),
	intField("snapshot_freq", "-1", func(c *Config) *int { return &c.SnapshotFreq }),
	boolField("use_quantized_grad", "false", func(c *Config) *bool { return &c.UseQuantizedGrad }),
	intField("num_grad_quant_bins", "4", func(c *Config) *int { return &c.NumGradQuantBins }, gte(2)),
	boolField("quant_train_renew_leaf", "false", func(c *Config) *bool { return &c.QuantTrainRenewLeaf }),
	boolField("stochastic_rounding", "true", func(c *Config) *bool { return &c.StochasticRounding }),
	boolField("linear_tree", "false", func(c *Config) *bool { return &c.LinearTree }),

	intField("max_bin", "255", func(c *Config) *int { return &c.MaxBin }, gt(1)),
	intListField("max_bin_by_feature", func(c *Config) *[]int { return &c.MaxBinByFeature }, gt(1)),
	intField("min_data_in_bin", "3", func(c *Config) *int { return &c.MinDataInBin }, gt(0)),
	intField("bin_construct_sample_cnt", "200000", func(c *Config) *int { return &c.BinConstructSampleCnt }, gt(0)),
	intField("data_random_seed", "1", func(c *Config) *int { return &c.DataRandomSeed }),
	boolField("is_enable_sparse", "true", func(c *Config) *bool { return &c.IsEnableSparse }),
	boolField("enable_bundle", "true", func(c *Config) *bool { return &c.EnableBundle }),
	boolField("use_missing", "true", func(c *Config) *bool { return &c.UseMissing }),
	boolField("zero_as_missing", "false", func(c *Config) *bool { return &c.ZeroAsMissing }),
	boolField("feature_pre_filter", "true", func(c *Config) *bool { return &c.FeaturePreFilter }),
	boolField("pre_partition", "false", func(c *Config) *bool { return &c.PrePartition }),
	boolField("two_round", "false", func(c *Config) *bool { return &c.TwoRound }),
	boolField("header", "false", func(c *Config) *bool { return &c.Header }),
	stringField("label_column", "", func(c *Config) *string { return &c.LabelColumn }),
	stringField("weight_column", "", func(c *Config) *string { return &c.WeightColumn }),
	stringField("group_column", "", func(c *Config) *string { return &c.GroupColumn }),
	stringField("ignore_column", "", func(c *Config) *string { return &c.IgnoreColumn }),
	stringField("categorical_feature", "", func(c *Config) *string { return &c.CategoricalFeature }),
	stringField("forcedbins_filename", "", func(c *Config) *string { return &c.ForcedBinsFilename }),
	boolField("save_binary", "false", func(c *Config) *bool { return &c.SaveBinary }),
	boolField("precise_float_parser", "false", func(c *Config) *bool { return &c.PreciseFloatParser }),
	stringField("parser_config_file", "", func(c *Config) *string { return &c.ParserConfigFile }),

	intField("start_iteration_predict", "0", func(c *Config) *int { return &c.StartIterationPredict }),
	intField("num_iteration_predict", "-1", func(c *Config) *int { return &c.NumIterationPredict }),
	boolField("predict_raw_score", "false", func(c *Config) *bool { return &c.PredictRawScore }),
	boolField("predict_leaf_index", "false", func(c *Config) *bool { return &c.PredictLeafIndex }),
	boolField("predict_contrib", "false", func(c *Config) *bool { return &c.PredictContrib }),
	boolField("predict_disable_shape_check", "false", func(c *Config) *bool { return &c.PredictDisableShapeCheck }),
	boolField("pred_early_stop", "false", func(c *Config) *bool { return &c.PredEarlyStop }),
	intField("pred_early_stop_freq", "10", func(c *Config) *int { return &c.PredEarlyStopFreq }),
	floatField("pred_early_stop_margin", "10", func(c *Config) *float64 { return &c.PredEarlyStopMargin }),
	stringField("output_result", "LightGBM_predict_result.txt", func(c *Config) *string { return &c.OutputResult }),

	stringField("convert_model_language", "", func(c *Config) *string { return &c.ConvertModelLanguage }),
	stringField("convert_model", "gbdt_prediction.cpp", func(c *Config) *string { return &c.ConvertModel }),

	intField("objective_seed", "5", func(c *Config) *int { return &c.ObjectiveSeed }),
	intField("num_class", "1", func(c *Config) *int { return &c.NumClass }, gt(0)),
	boolField("is_unbalance", "false", func(c *Config) *bool { return &c.IsUnbalance }),
	floatField("scale_pos_weight", "1", func(c *Config) *float64 { return &c.ScalePosWeight }, gt(0)),
	floatField("sigmoid", "1", func(c *Config) *float64 { return &c.Sigmoid }, gt(0)),
	boolField("boost_from_average", "true", func(c *Config) *bool { return &c.BoostFromAverage }),
	boolField("reg_sqrt", "false", func(c *Config) *bool { return &c.RegSqrt }),
	floatField("alpha", "0.9", func(c *Config) *float64 { return &c.Alpha }, gt(0)),
	floatField("fair_c", "1", func(c *Config) *float64 { return &c.FairC }, gt(0)),
	floatField("poisson_max_delta_step", "0.7", func(c *Config) *float64 { return &c.PoissonMaxDeltaStep }, gt(0)),
	floatField("tweedie_variance_power", "1.5", func(c *Config) *float64 { return &c.TweedieVariancePower }, gte(1), lt(2)),
	intField("lambdarank_truncation_level", "30", func(c *Config) *int { return &c.LambdarankTruncationLevel }, gt(0)),
	boolField("lambdarank_norm", "true", func(c *Config) *bool { return &c.LambdarankNorm }),
	floatListField("label_gain", func(c *Config) *[]float64 { return &c.LabelGain }),
	floatField("lambdarank_position_bias_regularization", "0", func(c *Config) *float64 { return &c.LambdarankPositionBiasRegularization }, gte(0)),

	enumField("metric", "", func(c *Config) any { return &c.Metric }),
	intField("metric_freq", "1", func(c *Config) *int { return &c.MetricFreq }, gt(0)),
	boolField("is_provide_training_metric", "false", func(c *Config) *bool { return &c.IsProvideTrainingMetric }),
	intListField("eval_at", func(c *Config) *[]int { return &c.EvalAt }, gt(0)),
	intField("multi_error_top_k", "1", func(c *Config) *int { return &c.MultiErrorTopK }, gt(0)),
	floatListField("auc_mu_weights", func(c *Config) *[]float64 { return &c.AucMuWeights }),

	intField("num_machines", "1", func(c *Config) *int { return &c.NumMachines }, gt(0)),
	intField("local_listen_port", "12400", func(c *Config) *int { return &c.LocalListenPort }, gt(0)),
	intField("time_out", "120", func(c *Config) *int { return &c.TimeOut }, gt(0)),
	stringField("machine_list_filename", "", func(c *Config) *string { return &c.MachineListFilename }),
	stringField("machines", "", func(c *Config) *string { return &c.Machines }),

	intField("gpu_platform_id", "-1", func(c *Config) *int { return &c.GPUPlatformID }),
	intField("gpu_device_id", "-1", func(c *Config) *int { return &c.GPUDeviceID }),
	boolField("gpu_use_dp", "false", func(c *Config) *bool { return &c.GPUUseDP }),
	intField("num_gpu", "1", func(c *Config) *int { return &c.NumGPU }, gt(0)),
}

var fieldIndex = func() map[string]int {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[f.Name] = i
	}
	return idx
}()

// Fields returns the descriptor table in reference order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the descriptor for a canonical parameter name.
func Lookup(name string) (Field, bool) {
	i, ok := fieldIndex[name]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}
