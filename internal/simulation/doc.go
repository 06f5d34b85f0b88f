// Package simulation implements the coin-flip model: a trial is a person
// flipping a fair coin until the first tails or until every flip came up
// heads, and a batch is a group of trials evaluated sequentially on one
// random source. It also owns the partitioning of a run into batches and
// the fold of batch results into a run Summary.
//
// Nothing in this package spawns goroutines; parallelism lives in the
// orchestration package.
package simulation
