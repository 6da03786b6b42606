package shop

import "go.uber.org/zap"

// LogNotifier surfaces admin notifications in the service log. A real
// storefront shows them in its admin UI instead.
type LogNotifier struct {
	l *zap.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{l: zap.L().Named("notifications")}
}

func (n *LogNotifier) Success(msg string) { n.l.Info(msg) }
func (n *LogNotifier) Warning(msg string) { n.l.Warn(msg) }
func (n *LogNotifier) Error(msg string)   { n.l.Error(msg) }
