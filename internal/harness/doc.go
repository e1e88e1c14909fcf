// Package harness runs suites of verification cases.
//
// A suite pins the expected verdict for a set of (input, engine output)
// pairs, so a change to an engine, a dataset, or the checker itself shows up
// as a failing case.
//
// # Suite Format
//
// Suites are YAML files:
//
//	name: radix_fk
//	description: "FK join engine against the small fixtures"
//	data_length: 8
//	cases:
//	  - name: exact
//	    input: inputs/e2e.txt
//	    output: outputs/exact.txt
//	    expect: pass
//	  - name: spurious_row
//	    input: inputs/e2e.txt
//	    output: outputs/extra.txt
//	    expect: size_mismatch
//	    extra: 1
//
// Case paths are relative to the suite file. expect is one of pass,
// size_mismatch, content_mismatch, or error (the input table file is
// rejected). missing, extra and warnings optionally pin the diagnostic
// counts.
//
// # Usage
//
//	suite, err := harness.LoadSuite("testdata/suites/fk.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := harness.Run(suite, harness.Options{})
//	for _, c := range result.Cases {
//	    if !c.Pass {
//	        log.Println(c.Name, c.Errors)
//	    }
//	}
package harness
