package sheaf

import "errors"

// Sentinel errors returned by problem validation and the Learner.
var (
	// ErrNilProblem indicates that Fit received a nil *Problem.
	ErrNilProblem = errors.New("sheaf: problem is nil")

	// ErrNoPatches indicates a problem with an empty patch collection.
	ErrNoPatches = errors.New("sheaf: problem must contain at least one patch")

	// ErrEmptyPatchName indicates a patch with an empty name.
	ErrEmptyPatchName = errors.New("sheaf: patch name must be non-empty")

	// ErrDuplicatePatch indicates two patches sharing one name; names key
	// the learner's configuration map and must be unique.
	ErrDuplicatePatch = errors.New("sheaf: duplicate patch name")

	// ErrBadConfig indicates a patch configuration with non-positive
	// positions or characters.
	ErrBadConfig = errors.New("sheaf: patch config dimensions must be positive")

	// ErrScalarTargetOnly indicates a patch requesting DModel != 1 or a
	// target wider than a single scalar. Multi-column targets are an
	// unsupported input for the current model, rejected rather than
	// silently truncated.
	ErrScalarTargetOnly = errors.New("sheaf: only scalar targets (d_model = 1) are supported")

	// ErrNoSamples indicates a patch (or partition input) without samples.
	ErrNoSamples = errors.New("sheaf: patch must contain at least one sample")

	// ErrSampleTargetMismatch indicates diverging sample and target counts.
	ErrSampleTargetMismatch = errors.New("sheaf: samples and targets must have equal length")

	// ErrSampleShape indicates a sample or constraint matrix whose
	// dimensions do not match its patch configuration.
	ErrSampleShape = errors.New("sheaf: sample shape does not match patch config")

	// ErrUnknownPatch indicates a reference to a patch name that does not
	// exist in the problem (gluings) or in the last fit (predictions).
	ErrUnknownPatch = errors.New("sheaf: unknown patch name")

	// ErrNotFitted indicates a prediction or solution query before any
	// successful Fit.
	ErrNotFitted = errors.New("sheaf: learner has not been fitted")

	// ErrNilConditioning indicates that Partition received a nil
	// conditioning function.
	ErrNilConditioning = errors.New("sheaf: conditioning function is nil")

	// ErrNegativeRidge indicates a negative ridge coefficient passed to
	// WithRidge (raised via panic: programmer error in configuration).
	ErrNegativeRidge = errors.New("sheaf: ridge coefficient must be non-negative")

	// ErrNegativeTolerance indicates a negative residual tolerance passed
	// to WithTolerance (raised via panic).
	ErrNegativeTolerance = errors.New("sheaf: tolerance must be non-negative")

	// ErrNilTraceWriter indicates a nil writer passed to WithTrace
	// (raised via panic).
	ErrNilTraceWriter = errors.New("sheaf: trace writer must be non-nil")
)
