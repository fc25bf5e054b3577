// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage in ~/.lotus/config.toml
//     (or $LOTUS_HOME/config.toml)
package file
