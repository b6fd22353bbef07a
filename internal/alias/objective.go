package alias

var objectiveAliases = map[string]string{
	"regression":              "regression",
	"regression_l2":           "regression",
	"mean_squared_error":      "regression",
	"mse":                     "regression",
	"l2":                      "regression",
	"l2_root":                 "regression",
	"root_mean_squared_error": "regression",
	"rmse":                    "regression",

	"regression_l1":       "regression_l1",
	"mean_absolute_error": "regression_l1",
	"l1":                  "regression_l1",
	"mae":                 "regression_l1",

	"multiclass": "multiclass",
	"softmax":    "multiclass",

	"multiclassova":  "multiclassova",
	"multiclass_ova": "multiclassova",
	"ova":            "multiclassova",
	"ovr":            "multiclassova",

	"xentropy":      "cross_entropy",
	"cross_entropy": "cross_entropy",

	"xentlambda":           "cross_entropy_lambda",
	"cross_entropy_lambda": "cross_entropy_lambda",

	"mean_absolute_percentage_error": "mape",
	"mape":                           "mape",

	"rank_xendcg":  "rank_xendcg",
	"xendcg":       "rank_xendcg",
	"xe_ndcg":      "rank_xendcg",
	"xe_ndcg_mart": "rank_xendcg",
	"xendcg_mart":  "rank_xendcg",

	"none":   "custom",
	"null":   "custom",
	"custom": "custom",
	"na":     "custom",
}

var knownObjectives = map[string]bool{
	"regression":           true,
	"regression_l1":        true,
	"huber":                true,
	"fair":                 true,
	"poisson":              true,
	"quantile":             true,
	"mape":                 true,
	"gamma":                true,
	"tweedie":              true,
	"binary":               true,
	"multiclass":           true,
	"multiclassova":        true,
	"cross_entropy":        true,
	"cross_entropy_lambda": true,
	"lambdarank":           true,
	"rank_xendcg":          true,
	"custom":               true,
}

var metricAliases = map[string]string{
	"regression":         "l2",
	"regression_l2":      "l2",
	"l2":                 "l2",
	"mean_squared_error": "l2",
	"mse":                "l2",

	"l2_root":                 "rmse",
	"root_mean_squared_error": "rmse",
	"rmse":                    "rmse",

	"regression_l1":       "l1",
	"l1":                  "l1",
	"mean_absolute_error": "l1",
	"mae":                 "l1",

	"binary_logloss": "binary_logloss",
	"binary":         "binary_logloss",

	"ndcg":         "ndcg",
	"lambdarank":   "ndcg",
	"rank_xendcg":  "ndcg",
	"xendcg":       "ndcg",
	"xe_ndcg":      "ndcg",
	"xe_ndcg_mart": "ndcg",
	"xendcg_mart":  "ndcg",

	"map":                    "map",
	"mean_average_precision": "map",

	"multi_logloss":  "multi_logloss",
	"multiclass":     "multi_logloss",
	"softmax":        "multi_logloss",
	"multiclassova":  "multi_logloss",
	"multiclass_ova": "multi_logloss",
	"ova":            "multi_logloss",
	"ovr":            "multi_logloss",

	"xentropy":      "cross_entropy",
	"cross_entropy": "cross_entropy",

	"xentlambda":           "cross_entropy_lambda",
	"cross_entropy_lambda": "cross_entropy_lambda",

	"kldiv":            "kullback_leibler",
	"kullback_leibler": "kullback_leibler",

	"mean_absolute_percentage_error": "mape",
	"mape":                           "mape",

	"none":   "custom",
	"null":   "custom",
	"custom": "custom",
	"na":     "custom",
}

var knownMetrics = map[string]bool{
	"l1":                   true,
	"l2":                   true,
	"rmse":                 true,
	"quantile":             true,
	"huber":                true,
	"fair":                 true,
	"poisson":              true,
	"gamma":                true,
	"gamma_deviance":       true,
	"tweedie":              true,
	"mape":                 true,
	"r2":                   true,
	"ndcg":                 true,
	"map":                  true,
	"auc":                  true,
	"average_precision":    true,
	"binary_logloss":       true,
	"binary_error":         true,
	"auc_mu":               true,
	"multi_logloss":        true,
	"multi_error":          true,
	"cross_entropy":        true,
	"cross_entropy_lambda": true,
	"kullback_leibler":     true,
	"custom":               true,
}

// ObjectiveAlias maps a lowercase objective spelling to its canonical name.
// Spellings without a synonym are returned unchanged.
func ObjectiveAlias(name string) string {
	if canonical, ok := objectiveAliases[name]; ok {
		return canonical
	}
	return name
}

// MetricAlias maps a lowercase metric spelling to its canonical name.
// Spellings without a synonym are returned unchanged.
func MetricAlias(name string) string {
	if canonical, ok := metricAliases[name]; ok {
		return canonical
	}
	return name
}

// IsKnownObjective reports whether name is a canonical objective.
func IsKnownObjective(name string) bool {
	return knownObjectives[name]
}

// IsKnownMetric reports whether name is a canonical metric.
func IsKnownMetric(name string) bool {
	return knownMetrics[name]
}
