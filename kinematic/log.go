package kinematic

import "go.uber.org/zap"

// logger is the package-level warning sink. The core is silent on the
// happy path; it only logs the two documented warning cases (floating
// joints, material-lock poisoning recovery). Unresolved mimic references
// are returned as errors by Tree.Validate, not logged.
var logger = zap.NewNop().Sugar()

func init() {
	if l, err := zap.NewDevelopment(); err == nil {
		logger = l.Sugar()
	}
}

// SetLogger overrides the package-level logger, e.g. to route warnings
// through an application's own zap instance.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}
