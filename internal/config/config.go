// Package config turns a canonical parameter map into a typed, validated
// training configuration.
//
// Build is the single entry point. It runs an ordered list of rules (seed
// derivation, enumerated values, typed fields, structured values, then the
// conflict checks) against a fresh Config. A rule either adjusts the Config,
// possibly emitting warnings, or aborts with a *FatalError; a failed build
// never returns a partially filled Config.
package config

import (
	"github.com/harrison/boostcfg/internal/diagnostic"
)

// ErrFatal is matched by every error a rule aborts with.
var ErrFatal = diagnostic.ErrFatal

// FatalError aborts a build. Code names the rule that raised it.
type FatalError = diagnostic.FatalError

// TaskType is what the training binary is asked to do.
type TaskType string

const (
	TaskTrain        TaskType = "train"
	TaskPredict      TaskType = "predict"
	TaskConvertModel TaskType = "convert_model"
	TaskRefit        TaskType = "refit"
	TaskSaveBinary   TaskType = "save_binary"
)

// Canonical tags of the enumerated string fields.
const (
	BoostingGBDT = "gbdt"
	BoostingDART = "dart"
	BoostingGOSS = "goss"
	BoostingRF   = "rf"

	StrategyBagging = "bagging"
	StrategyGOSS    = "goss"

	DeviceTypeCPU  = "cpu"
	DeviceTypeGPU  = "gpu"
	DeviceTypeCUDA = "cuda"

	LearnerSerial  = "serial"
	LearnerFeature = "feature"
	LearnerData    = "data"
	LearnerVoting  = "voting"

	MonotoneBasic        = "basic"
	MonotoneIntermediate = "intermediate"
	MonotoneAdvanced     = "advanced"
)

// Numeric thresholds shared by the rules.
const (
	kEpsilon       = 1e-15
	kZeroThreshold = 1e-35
)

// Config is the resolved parameter record.
type Config struct {
	// Core
	ConfigFile         string
	Task               TaskType
	Objective          string
	Boosting           string
	DataSampleStrategy string
	Data               string
	Valid              []string
	NumIterations      int
	LearningRate       float64
	NumLeaves          int
	TreeLearner        string
	NumThreads         int
	DeviceType         string
	Seed               int
	Deterministic      bool

	// Learning control
	ForceColWise               bool
	ForceRowWise               bool
	HistogramPoolSize          float64
	MaxDepth                   int
	MinDataInLeaf              int
	MinSumHessianInLeaf        float64
	BaggingFraction            float64
	PosBaggingFraction         float64
	NegBaggingFraction         float64
	BaggingFreq                int
	BaggingSeed                int
	BaggingByQuery             bool
	FeatureFraction            float64
	FeatureFractionByNode      float64
	FeatureFractionSeed        int
	ExtraTrees                 bool
	ExtraSeed                  int
	EarlyStoppingRound         int
	EarlyStoppingMinDelta      float64
	FirstMetricOnly            bool
	MaxDeltaStep               float64
	LambdaL1                   float64
	LambdaL2                   float64
	LinearLambda               float64
	MinGainToSplit             float64
	DropRate                   float64
	MaxDrop                    int
	SkipDrop                   float64
	XGBoostDartMode            bool
	UniformDrop                bool
	DropSeed                   int
	TopRate                    float64
	OtherRate                  float64
	MinDataPerGroup            int
	MaxCatThreshold            int
	CatL2                      float64
	CatSmooth                  float64
	MaxCatToOnehot             int
	TopK                       int
	MonotoneConstraints        []int
	MonotoneConstraintsMethod  string
	MonotonePenalty            float64
	FeatureContri              []float64
	ForcedSplitsFilename       string
	RefitDecayRate             float64
	CEGBTradeoff               float64
	CEGBPenaltySplit           float64
	CEGBPenaltyFeatureLazy     []float64
	CEGBPenaltyFeatureCoupled  []float64
	PathSmooth                 float64
	InteractionConstraints     string
	TreeInteractionConstraints string
	Verbosity                  int
	InputModel                 string
	OutputModel                string
	SavedFeatureImportanceType int
	SnapshotFreq               int
	UseQuantizedGrad           bool
	NumGradQuantBins           int
	QuantTrainRenewLeaf        bool
	StochasticRounding         bool
	LinearTree                 bool

	// IO
	MaxBin                int
	MaxBinByFeature       []int
	MinDataInBin          int
	BinConstructSampleCnt int
	DataRandomSeed        int
	IsEnableSparse        bool
	EnableBundle          bool
	UseMissing            bool
	ZeroAsMissing         bool
	FeaturePreFilter      bool
	PrePartition          bool
	TwoRound              bool
	Header                bool
	LabelColumn           string
	WeightColumn          string
	GroupColumn           string
	IgnoreColumn          string
	CategoricalFeature    string
	ForcedBinsFilename    string
	SaveBinary            bool
	PreciseFloatParser    bool
	ParserConfigFile      string

	// Predict
	StartIterationPredict    int
	NumIterationPredict      int
	PredictRawScore          bool
	PredictLeafIndex         bool
	PredictContrib           bool
	PredictDisableShapeCheck bool
	PredEarlyStop            bool
	PredEarlyStopFreq        int
	PredEarlyStopMargin      float64
	OutputResult             string

	// Convert
	ConvertModelLanguage string
	ConvertModel         string

	// Objective
	ObjectiveSeed                        int
	NumClass                             int
	IsUnbalance                          bool
	ScalePosWeight                       float64
	Sigmoid                              float64
	BoostFromAverage                     bool
	RegSqrt                              bool
	Alpha                                float64
	FairC                                float64
	PoissonMaxDeltaStep                  float64
	TweedieVariancePower                 float64
	LambdarankTruncationLevel            int
	LambdarankNorm                       bool
	LabelGain                            []float64
	LambdarankPositionBiasRegularization float64

	// Metric
	Metric                  []string
	MetricFreq              int
	IsProvideTrainingMetric bool
	EvalAt                  []int
	MultiErrorTopK          int
	AucMuWeights            []float64

	// Network
	NumMachines         int
	LocalListenPort     int
	TimeOut             int
	MachineListFilename string
	Machines            string

	// GPU
	GPUPlatformID int
	GPUDeviceID   int
	GPUUseDP      bool
	NumGPU        int

	// Derived by the structured and conflict rules.
	InteractionConstraintsVector     [][]int
	TreeInteractionConstraintsVector [][]int
	AucMuWeightsMatrix               [][]float64
	IsParallel                       bool
	IsDataBasedParallel              bool

	// Unknown keeps parameters no descriptor binds, verbatim.
	Unknown map[string]string
}

// New returns a Config holding every descriptor's default.
func New() *Config {
	c := &Config{Unknown: make(map[string]string)}
	for _, f := range fields {
		f.reset(c)
	}
	return c
}

// IsMulticlassObjective reports whether the objective trains one model per class.
func (c *Config) IsMulticlassObjective() bool {
	return isMulticlassTag(c.Objective) || (c.Objective == "custom" && c.NumClass > 1)
}

// IsMulticlassMetric reports whether metric needs per-class scores.
func (c *Config) IsMulticlassMetric(metric string) bool {
	switch metric {
	case "multi_logloss", "multi_error", "auc_mu":
		return true
	case "custom":
		return c.NumClass > 1
	}
	return isMulticlassTag(metric)
}

func isMulticlassTag(tag string) bool {
	return tag == "multiclass" || tag == "multiclassova"
}
