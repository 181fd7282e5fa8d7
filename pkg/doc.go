// Package pkg provides the core libraries for FlowBoard.
//
// # Overview
//
// FlowBoard turns rough storyboards into animated clips, one frame at a
// time. The pkg directory holds everything the CLI and the HTTP API share:
//
//  1. [scene] - Shape model and scene engine contract (text blocks, geo
//     cards, connectors, container frames)
//  2. [seed] - Onboarding layout: guard, pure layout generator, seeder
//  3. [boards] - Board registries (memory, MongoDB)
//  4. [jobs] - Clip-generation job lifecycle (memory, Redis; stub and
//     HTTP generators)
//  5. [export] - Graphviz-based board previews (DOT, SVG)
//  6. [config] - TOML server configuration with env overrides
//
// # Architecture
//
// The typical flow when a fresh board is opened:
//
//	Board store ([boards])
//	     ↓
//	Scene engine snapshot ([scene])
//	     ↓
//	Seed guard + layout ([seed])
//	     ↓
//	Atomic batch insert ([scene])
//
// Clip generation runs beside it: the API submits a job ([jobs]), returns
// the ID immediately, and the client polls until the clip URL is ready.
//
// # Quick Start
//
// Seed a fresh in-memory board:
//
//	import (
//	    "context"
//	    "github.com/flowboardhq/flowboard/pkg/scene"
//	    "github.com/flowboardhq/flowboard/pkg/seed"
//	)
//
//	frame := scene.NewFrame(0, 0, scene.FrameProps{Width: 1400, Height: 900})
//	engine, _ := scene.NewMemoryEngineWith([]scene.Shape{frame})
//
//	seeder := seed.NewSeeder(engine, nil)
//	result, _ := seeder.Run(context.Background(), frame.ID)
//	// result.Seeded == true, result.ShapeCount == 10
//
// Running the same pass again is a silent no-op: the seed marker on the
// committed shapes makes a second run skip with
// [seed.SkipAlreadySeeded].
//
// # Supporting Packages
//
// [errors] - Structured error codes shared by CLI and API, plus input
// validation for board and shape identifiers.
//
// [observability] - Hook interfaces (seed, store, HTTP) with no-op
// defaults, so instrumentation backends stay optional.
//
// [httputil] - Retry with exponential backoff for calls to the external
// clip-generation backend.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/seed/...       # Specific package
//
// [scene]: https://pkg.go.dev/github.com/flowboardhq/flowboard/pkg/scene
// [seed]: https://pkg.go.dev/github.com/flowboardhq/flowboard/pkg/seed
// [boards]: https://pkg.go.dev/github.com/flowboardhq/flowboard/pkg/boards
// [jobs]: https://pkg.go.dev/github.com/flowboardhq/flowboard/pkg/jobs
// [export]: https://pkg.go.dev/github.com/flowboardhq/flowboard/pkg/export
// [config]: https://pkg.go.dev/github.com/flowboardhq/flowboard/pkg/config
// [errors]: https://pkg.go.dev/github.com/flowboardhq/flowboard/pkg/errors
// [observability]: https://pkg.go.dev/github.com/flowboardhq/flowboard/pkg/observability
// [httputil]: https://pkg.go.dev/github.com/flowboardhq/flowboard/pkg/httputil
// [buildinfo]: https://pkg.go.dev/github.com/flowboardhq/flowboard/pkg/buildinfo
// [seed.SkipAlreadySeeded]: https://pkg.go.dev/github.com/flowboardhq/flowboard/pkg/seed#SkipAlreadySeeded
package pkg
