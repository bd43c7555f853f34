// Package parallel runs independent jobs on a fixed set of goroutines.
//
// Each worker owns a queue. Jobs are dealt round-robin and an idle worker
// steals from the other queues before blocking, so a batch of images with
// very different sizes still keeps every worker busy.
//
// The pool never splits one job across goroutines. Callers hand it whole
// units of work (for boxblur, one image per job) that share no mutable
// state.
package parallel
