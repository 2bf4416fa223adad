// Package config handles configuration loading and resolution for xcfo.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--renderer, --theme, --no-color, --quiet, etc.)
//  2. Environment variables (XCFO_RENDERER, XCFO_THEME, XCFO_NO_COLOR, NO_COLOR, XCFO_QUIET, XCFO_DEBUG)
//  3. YAML config file (.xcfo.yaml in the working directory or $XDG_CONFIG_HOME/xcfo/.xcfo.yaml)
//  4. CI detection (GITHUB_ACTIONS, TF_BUILD, TEAMCITY_VERSION, CI)
//  5. Hardcoded defaults
//
// Every resolved value records the Source it came from, which is logged with
// --debug.
//
// # CI Behavior
//
// When a CI system is detected, or --is-ci / XCFO_CI forces it:
//   - The renderer defaults to the system's annotation dialect (plain for unknown vendors)
//   - Colors are disabled
//   - Unrecognized lines are dropped unless --preserve-unbeautified is given
package config
