// Package alias owns the catalog of parameter names: the canonical spelling of
// every parameter, the alternate spellings accepted for it, and the objective
// and metric synonyms.
//
// The catalog is static. The lookup table derived from it is built once on
// first use and is read-only afterwards, so it is safe to share between
// goroutines.
package alias

// Section groups parameters in the generated documentation.
type Section string

const (
	SectionCore      Section = "Core Parameters"
	SectionLearning  Section = "Learning Control Parameters"
	SectionIO        Section = "IO Parameters"
	SectionPredict   Section = "Predict Parameters"
	SectionConvert   Section = "Convert Parameters"
	SectionObjective Section = "Objective Parameters"
	SectionMetric    Section = "Metric Parameters"
	SectionNetwork   Section = "Network Parameters"
	SectionGPU       Section = "GPU Parameters"
)

// Parameter describes one canonical parameter name.
type Parameter struct {
	Name        string
	Aliases     []string
	Section     Section
	Description string
}

func p(section Section, name, desc string, aliases ...string) Parameter {
	return Parameter{Name: name, Aliases: aliases, Section: section, Description: desc}
}

var catalog = []Parameter{
	p(SectionCore, "config", "path of a parameter file; command-line values take precedence", "config_file"),
	p(SectionCore, "task", "train, predict, convert_model, refit or save_binary", "task_type"),
	p(SectionCore, "objective", "loss function to optimize", "objective_type", "app", "application", "loss"),
	p(SectionCore, "boosting", "gbdt, rf, dart (goss is accepted for backwards compatibility)", "boosting_type", "boost"),
	p(SectionCore, "data_sample_strategy", "bagging or goss"),
	p(SectionCore, "data", "path of training data", "train", "train_data", "train_data_file", "data_filename"),
	p(SectionCore, "valid", "paths of validation data, comma separated", "test", "valid_data", "valid_data_file", "test_data", "test_data_file", "valid_filenames"),
	p(SectionCore, "num_iterations", "number of boosting iterations", "num_iteration", "n_iter", "num_tree", "num_trees", "num_round", "num_rounds", "nrounds", "num_boost_round", "n_estimators", "max_iter"),
	p(SectionCore, "learning_rate", "shrinkage rate", "shrinkage_rate", "eta"),
	p(SectionCore, "num_leaves", "max number of leaves in one tree", "num_leaf", "max_leaves", "max_leaf", "max_leaf_nodes"),
	p(SectionCore, "tree_learner", "serial, feature, data or voting", "tree", "tree_type", "tree_learner_type"),
	p(SectionCore, "num_threads", "number of threads, 0 means the default", "num_thread", "nthread", "nthreads", "n_jobs"),
	p(SectionCore, "device_type", "cpu, gpu or cuda", "device"),
	p(SectionCore, "seed", "master seed used to derive the other seeds", "random_seed", "random_state"),
	p(SectionCore, "deterministic", "produce stable results across runs"),

	p(SectionLearning, "force_col_wise", "force col-wise histogram building"),
	p(SectionLearning, "force_row_wise", "force row-wise histogram building"),
	p(SectionLearning, "histogram_pool_size", "max cache size in MB for historical histograms, < 0 means no limit", "hist_pool_size"),
	p(SectionLearning, "max_depth", "limit the max depth of the tree model, <= 0 means no limit"),
	p(SectionLearning, "min_data_in_leaf", "minimal number of data in one leaf", "min_data_per_leaf", "min_data", "min_child_samples", "min_samples_leaf"),
	p(SectionLearning, "min_sum_hessian_in_leaf", "minimal sum hessian in one leaf", "min_sum_hessian_per_leaf", "min_sum_hessian", "min_hessian", "min_child_weight"),
	p(SectionLearning, "bagging_fraction", "fraction of data sampled without resampling", "sub_row", "subsample", "bagging"),
	p(SectionLearning, "pos_bagging_fraction", "fraction of positive data sampled for balanced bagging", "pos_sub_row", "pos_subsample", "pos_bagging"),
	p(SectionLearning, "neg_bagging_fraction", "fraction of negative data sampled for balanced bagging", "neg_sub_row", "neg_subsample", "neg_bagging"),
	p(SectionLearning, "bagging_freq", "frequency for bagging, 0 disables bagging", "subsample_freq"),
	p(SectionLearning, "bagging_seed", "random seed for bagging", "bagging_fraction_seed"),
	p(SectionLearning, "bagging_by_query", "sample whole queries instead of rows"),
	p(SectionLearning, "feature_fraction", "fraction of features sampled per tree", "sub_feature", "colsample_bytree"),
	p(SectionLearning, "feature_fraction_bynode", "fraction of features sampled per tree node", "sub_feature_bynode", "colsample_bynode"),
	p(SectionLearning, "feature_fraction_seed", "random seed for feature_fraction"),
	p(SectionLearning, "extra_trees", "use extremely randomized trees", "extra_tree"),
	p(SectionLearning, "extra_seed", "random seed for selecting thresholds when extra_trees is true"),
	p(SectionLearning, "early_stopping_round", "stop if one validation metric does not improve in this many rounds", "early_stopping_rounds", "early_stopping", "n_iter_no_change"),
	p(SectionLearning, "early_stopping_min_delta", "minimum improvement that counts for early stopping"),
	p(SectionLearning, "first_metric_only", "use only the first metric for early stopping"),
	p(SectionLearning, "max_delta_step", "limit the max output of tree leaves, <= 0 means no constraint", "max_tree_output", "max_leaf_output"),
	p(SectionLearning, "lambda_l1", "L1 regularization", "reg_alpha", "l1_regularization"),
	p(SectionLearning, "lambda_l2", "L2 regularization", "reg_lambda", "lambda", "l2_regularization"),
	p(SectionLearning, "linear_lambda", "linear tree regularization"),
	p(SectionLearning, "min_gain_to_split", "minimal gain to perform a split", "min_split_gain"),
	p(SectionLearning, "drop_rate", "dart: dropout rate", "rate_drop"),
	p(SectionLearning, "max_drop", "dart: max number of dropped trees in one iteration"),
	p(SectionLearning, "skip_drop", "dart: probability of skipping the dropout procedure"),
	p(SectionLearning, "xgboost_dart_mode", "dart: use xgboost dart mode"),
	p(SectionLearning, "uniform_drop", "dart: use uniform drop"),
	p(SectionLearning, "drop_seed", "dart: random seed to choose dropping models"),
	p(SectionLearning, "top_rate", "goss: retain ratio of large gradient data"),
	p(SectionLearning, "other_rate", "goss: retain ratio of small gradient data"),
	p(SectionLearning, "min_data_per_group", "minimal number of data per categorical group"),
	p(SectionLearning, "max_cat_threshold", "max number of split points considered for categorical features"),
	p(SectionLearning, "cat_l2", "L2 regularization in categorical split"),
	p(SectionLearning, "cat_smooth", "reduces the effect of noises in categorical features"),
	p(SectionLearning, "max_cat_to_onehot", "use one-vs-other split when categories are at most this many"),
	p(SectionLearning, "top_k", "voting: number of top features", "topk"),
	p(SectionLearning, "monotone_constraints", "monotone constraint per feature: -1, 0 or 1", "mc", "monotone_constraint", "monotonic_cst"),
	p(SectionLearning, "monotone_constraints_method", "basic, intermediate or advanced", "monotone_constraining_method", "mc_method"),
	p(SectionLearning, "monotone_penalty", "penalty on monotone splits near the root", "monotone_splits_penalty", "ms_penalty", "mc_penalty"),
	p(SectionLearning, "feature_contri", "multiplier applied to each feature's gain", "feature_contrib", "fc", "fp", "feature_penalty"),
	p(SectionLearning, "forcedsplits_filename", "path of a JSON file with splits forced at the top of every tree", "fs", "forced_splits_filename", "forced_splits_file", "forced_splits"),
	p(SectionLearning, "refit_decay_rate", "decay rate of leaf outputs in refit"),
	p(SectionLearning, "cegb_tradeoff", "cost-effective gradient boosting multiplier for all penalties"),
	p(SectionLearning, "cegb_penalty_split", "cost-effective gradient boosting penalty for splitting a node"),
	p(SectionLearning, "cegb_penalty_feature_lazy", "cost-effective gradient boosting penalty per data point for using a feature"),
	p(SectionLearning, "cegb_penalty_feature_coupled", "cost-effective gradient boosting penalty for using a feature once per forest"),
	p(SectionLearning, "path_smooth", "controls smoothing applied to tree nodes"),
	p(SectionLearning, "interaction_constraints", "groups of features allowed to interact, e.g. [0,1,2],[2,3]"),
	p(SectionLearning, "tree_interaction_constraints", "groups of features allowed in the same tree"),
	p(SectionLearning, "verbosity", "< 0 fatal, 0 warning, 1 info, > 1 debug", "verbose"),
	p(SectionLearning, "input_model", "filename of input model", "model_input", "model_in"),
	p(SectionLearning, "output_model", "filename of output model", "model_output", "model_out"),
	p(SectionLearning, "saved_feature_importance_type", "0 counts splits, 1 sums gains"),
	p(SectionLearning, "snapshot_freq", "frequency of saving model snapshots, <= 0 disables", "save_period"),
	p(SectionLearning, "use_quantized_grad", "use quantized gradients when training"),
	p(SectionLearning, "num_grad_quant_bins", "number of bins to quantize gradients and hessians"),
	p(SectionLearning, "quant_train_renew_leaf", "renew leaf values with original gradients"),
	p(SectionLearning, "stochastic_rounding", "use stochastic rounding in gradient quantization"),
	p(SectionLearning, "linear_tree", "fit piecewise linear gradient boosting trees", "linear_trees"),

	p(SectionIO, "max_bin", "max number of bins that feature values will be bucketed in", "max_bins"),
	p(SectionIO, "max_bin_by_feature", "max number of bins for each feature"),
	p(SectionIO, "min_data_in_bin", "minimal number of data inside one bin"),
	p(SectionIO, "bin_construct_sample_cnt", "number of data sampled to construct feature bins", "subsample_for_bin"),
	p(SectionIO, "data_random_seed", "random seed for sampling data to construct histogram bins", "data_seed"),
	p(SectionIO, "is_enable_sparse", "enable sparse optimization", "is_sparse", "enable_sparse", "sparse"),
	p(SectionIO, "enable_bundle", "enable exclusive feature bundling", "is_enable_bundle", "bundle"),
	p(SectionIO, "use_missing", "enable special handling of missing values"),
	p(SectionIO, "zero_as_missing", "treat all zeros as missing values"),
	p(SectionIO, "feature_pre_filter", "pre-filter unsplittable features"),
	p(SectionIO, "pre_partition", "training data is pre-partitioned across machines", "is_pre_partition"),
	p(SectionIO, "two_round", "map data file to memory in two rounds", "two_round_loading", "use_two_round_loading"),
	p(SectionIO, "header", "input data has a header", "has_header"),
	p(SectionIO, "label_column", "label column index or name:<column>", "label"),
	p(SectionIO, "weight_column", "weight column index or name:<column>", "weight"),
	p(SectionIO, "group_column", "query/group id column", "group", "group_id", "query_column", "query", "query_id"),
	p(SectionIO, "ignore_column", "columns to ignore in training", "ignore_feature", "blacklist"),
	p(SectionIO, "categorical_feature", "categorical feature columns", "cat_feature", "categorical_column", "cat_column", "categorical_features"),
	p(SectionIO, "forcedbins_filename", "path of a JSON file with forced bin upper bounds"),
	p(SectionIO, "save_binary", "save the dataset to a binary file", "is_save_binary", "is_save_binary_file"),
	p(SectionIO, "precise_float_parser", "use precise floating point number parsing"),
	p(SectionIO, "parser_config_file", "path of a custom parser initialization file"),

	p(SectionPredict, "start_iteration_predict", "start index of the iteration to predict"),
	p(SectionPredict, "num_iteration_predict", "how many trained iterations to use in prediction, <= 0 means no limit"),
	p(SectionPredict, "predict_raw_score", "predict raw scores only", "is_predict_raw_score", "predict_rawscore", "raw_score"),
	p(SectionPredict, "predict_leaf_index", "predict leaf indices", "is_predict_leaf_index", "leaf_index"),
	p(SectionPredict, "predict_contrib", "estimate feature contributions with SHAP", "is_predict_contrib", "contrib"),
	p(SectionPredict, "predict_disable_shape_check", "skip the feature count check in prediction"),
	p(SectionPredict, "pred_early_stop", "use early stopping to speed up prediction"),
	p(SectionPredict, "pred_early_stop_freq", "frequency of checking early stopping prediction"),
	p(SectionPredict, "pred_early_stop_margin", "threshold of margin in early stopping prediction"),
	p(SectionPredict, "output_result", "filename of prediction result", "predict_result", "prediction_result", "predict_name", "prediction_name", "pred_name", "name_pred"),

	p(SectionConvert, "convert_model_language", "language of the converted model, only cpp is supported"),
	p(SectionConvert, "convert_model", "output filename of the converted model", "convert_model_file"),

	p(SectionObjective, "objective_seed", "random seed for objectives that need randomness"),
	p(SectionObjective, "num_class", "number of classes for multiclass objectives", "num_classes"),
	p(SectionObjective, "is_unbalance", "training data is unbalanced", "unbalance", "unbalanced_sets"),
	p(SectionObjective, "scale_pos_weight", "weight of labels with the positive class"),
	p(SectionObjective, "sigmoid", "parameter of the sigmoid function"),
	p(SectionObjective, "boost_from_average", "adjust initial score to the mean of labels"),
	p(SectionObjective, "reg_sqrt", "fit sqrt(label) instead of the original values"),
	p(SectionObjective, "alpha", "parameter for huber and quantile regression"),
	p(SectionObjective, "fair_c", "parameter for fair regression"),
	p(SectionObjective, "poisson_max_delta_step", "safeguard optimization in poisson regression"),
	p(SectionObjective, "tweedie_variance_power", "controls the variance of the tweedie distribution"),
	p(SectionObjective, "lambdarank_truncation_level", "number of top results to focus on in lambdarank"),
	p(SectionObjective, "lambdarank_norm", "normalize lambdas for queries"),
	p(SectionObjective, "label_gain", "relevant gain per label in lambdarank"),
	p(SectionObjective, "lambdarank_position_bias_regularization", "regularization for position bias factors"),

	p(SectionMetric, "metric", "metrics evaluated on the evaluation sets, comma separated", "metrics", "metric_types"),
	p(SectionMetric, "metric_freq", "frequency of metric output", "output_freq"),
	p(SectionMetric, "is_provide_training_metric", "output metrics on the training data", "training_metric", "is_training_metric", "train_metric"),
	p(SectionMetric, "eval_at", "NDCG and MAP evaluation positions", "ndcg_eval_at", "ndcg_at", "map_eval_at", "map_at"),
	p(SectionMetric, "multi_error_top_k", "threshold for the top-k multi-error metric"),
	p(SectionMetric, "auc_mu_weights", "flattened class-by-class loss weights for AUC-mu"),

	p(SectionNetwork, "num_machines", "number of machines for distributed learning", "num_machine"),
	p(SectionNetwork, "local_listen_port", "TCP listen port for local machines", "local_port", "port"),
	p(SectionNetwork, "time_out", "socket time-out in minutes"),
	p(SectionNetwork, "machine_list_filename", "path of the file listing machines", "machine_list_file", "machine_list", "mlist"),
	p(SectionNetwork, "machines", "list of machines as ip:port, comma separated", "workers", "nodes"),

	p(SectionGPU, "gpu_platform_id", "OpenCL platform id, -1 means the system default"),
	p(SectionGPU, "gpu_device_id", "device id in the selected platform, -1 means the default"),
	p(SectionGPU, "gpu_use_dp", "use double precision math on GPU"),
	p(SectionGPU, "num_gpu", "number of GPUs, CUDA only"),
}

// Parameters returns a copy of the catalog in declaration order.
func Parameters() []Parameter {
	out := make([]Parameter, len(catalog))
	for i, param := range catalog {
		param.Aliases = append([]string(nil), param.Aliases...)
		out[i] = param
	}
	return out
}
