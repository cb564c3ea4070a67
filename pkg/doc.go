// Package pkg provides the core libraries for torus machine-build
// calculations.
//
// # Overview
//
// Torus resolves the engineering build of a tokamak device: the concentric
// radial layer stack from the machine bore to the TF coil outboard leg, the
// vertical stack from the TF coil roof to the divertor floor, and the
// derived quantities that couple them (TF ripple, divertor geometry, port
// sizing, cryostat envelope). The pkg directory is organized into four main
// areas:
//
//  1. Domain logic - the build calculators and their physics helpers
//  2. Infrastructure - caching, diagnostics, observability
//  3. Input/output - parameter records, machine records, plots
//  4. Analysis - uncertainty quantification drivers
//
// # Architecture
//
// The typical data flow through torus:
//
//	TOML parameter file
//	         ↓
//	    [params] package (load, validate, migrate)
//	         ↓
//	    [build] package (radial + vertical + port calculators)
//	      ↓        ↓
//	  [ripple]  [divertor] [geometry] (physics helpers)
//	         ↓
//	    [report] package (ordered machine record)
//	         ↓
//	    table / JSON / msgpack / [plot] output
//
// # Quick Start
//
// Evaluate the reference baseline and read a solved quantity:
//
//	import (
//	    "github.com/charmbracelet/log"
//
//	    "github.com/fusionkit/torus/pkg/build"
//	    "github.com/fusionkit/torus/pkg/faults"
//	    "github.com/fusionkit/torus/pkg/params"
//	    "github.com/fusionkit/torus/pkg/report"
//	)
//
//	m := params.Defaults()
//	rec := report.NewRecord()
//
//	solver := build.New(log.Default(), faults.Discard)
//	solver.Radial(m, rec)
//	solver.Vertical(m, rec)
//	solver.PortSize(m, rec)
//
//	area, _ := rec.Lookup("fwarea")
//
// # Main Packages
//
// ## Domain Logic
//
// [build] - The three build calculators: the radial stack-up with ripple
// feedback on the outboard gap, the vertical stack-up for single- and
// double-null configurations, and the neutral-beam port-size calculation.
//
// [ripple] - TF ripple models: the fitted model for shaped coils with its
// applicability window, and the closed form for picture-frame coils.
//
// [divertor] - Divertor leg and plate geometry from the plasma shape, plus
// the simplified tight-aspect-ratio form.
//
// [geometry] - First-wall shell areas for D-shaped and elliptical
// cross-sections.
//
// ## Input/Output
//
// [params] - The device parameter record: TOML loading over baseline
// defaults, validation, obsolete-symbol migration, and symbol-addressed
// field access for the uncertainty drivers.
//
// [report] - Emission sinks for calculator output: ordered machine records,
// console tables, tees, and JSON/msgpack framing.
//
// [plot] - Terminal rendering of the radial build as a proportional bar.
//
// ## Analysis
//
// [uq] - Uncertainty quantification: Monte Carlo summaries, Morris
// elementary-effects screening, and Sobol sensitivity indices over any
// recorded figure of merit, evaluated in parallel.
//
// ## Infrastructure
//
// [cache] - Evaluation-record caching keyed by the full parameter set, with
// file, Redis, and null backends.
//
// [faults] - Diagnostic reporting in the numbered-code style of systems
// codes: collectors for programmatic access, log reporters, tees.
//
// [errors] - Structured error codes shared by the CLI and the HTTP API.
//
// [observability] - Pluggable hooks on solver passes, study runs, and cache
// access.
//
// [buildinfo] - Version metadata injected at link time.
//
// [build]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/build
// [ripple]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/ripple
// [divertor]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/divertor
// [geometry]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/geometry
// [params]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/params
// [report]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/report
// [plot]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/plot
// [uq]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/uq
// [cache]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/cache
// [faults]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/faults
// [errors]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/errors
// [observability]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/fusionkit/torus/pkg/buildinfo
package pkg
