// Package internal contains the core implementation packages for rfs.
//
// These packages are unavailable to external modules and provide all of the
// scaffolding behind the rfs CLI.
//
// # Package Organization
//
// The internal packages are organized by pipeline stage:
//
//   - componentpath: splitting and validating the user-entered path
//   - config: settings, defaults, validation and inline options
//   - plan: file names, folders and import paths for one component
//   - scaffolding: rendering file contents from templates
//   - structure: creating folders and files without overwriting
//   - workspace: choosing the root folder and prompting for paths
//   - services: the create pipeline tying the stages together
//
// Supporting packages:
//
//   - errors: the error catalogue, collection and reporting
//   - interfaces: host capabilities (settings, prompts, notices, files)
//   - adapters: viper, afero and terminal implementations of interfaces
//   - logging: structured logging on charmbracelet/log
//   - testutils: test doubles shared across packages
//   - version: build information
//
// # Data Flow
//
// A create request runs the stages in order:
//
//   - workspace resolves the root folder
//   - config resolves settings for that root, applying inline options
//   - componentpath parses the entered path
//   - plan computes every artifact to create
//   - scaffolding renders the artifacts
//   - structure writes them, skipping files that already exist
//
// Every stage reports failures as *errors.ScaffoldError. Errors are surfaced
// once at the command boundary by errors.ErrorHandler.
package internal
