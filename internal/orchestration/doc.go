// Package orchestration coordinates the concurrent execution of simulation
// batches and folds their results into a run summary. It decouples the
// simulation from presentation via the ProgressReporter and SummaryPresenter
// interfaces.
package orchestration
