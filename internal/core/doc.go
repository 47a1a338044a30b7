// Package core holds the joint domain model: elements meeting at joints, the
// load cases acting on them and the quantities derived per attached member
// (peak axial load, peak bending stress, simplified weld volume, local
// eccentricity).
//
// The model is read-mostly. A Project and its Elements and LoadCases are
// built once by an importer and only read afterwards, so the query methods
// may be called from several goroutines without locking.
package core
