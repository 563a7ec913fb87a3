// Package testcase loads batches of level-graph test cases from disk.
//
// # File Format
//
// A suite is an object with a "test_cases" array. Each case lists the
// number of levels, the declared number of teleporters and the teleporters
// themselves:
//
//	{
//	  "test_cases": [
//	    {
//	      "num_levels": 3,
//	      "num_teleporters": 2,
//	      "teleporters": [
//	        {"from_level": 1, "to_level": 2},
//	        {"from_level": 2, "to_level": 3}
//	      ]
//	    }
//	  ]
//	}
//
// The same shape is accepted as TOML ([[test_cases]] and
// [[test_cases.teleporters]] tables). [Load] picks the decoder from the file
// extension; [Read] takes the format explicitly.
//
// # Errors
//
// Structural problems are returned as a [*ParseError] naming the file, the
// zero-based case index and the offending field, wrapped in an
// INVALID_INPUT error. Nothing is printed. Range checks on teleporter
// endpoints are left to the solver, which reports INVALID_EDGE.
//
// num_teleporters is informational. A value that disagrees with the number
// of listed teleporters is recorded in [Suite.Warnings].
package testcase
