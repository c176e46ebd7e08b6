// Package config loads runtime settings for the photoctl CLI.
//
// Sources are applied in order, later ones winning:
//
//  1. Compiled-in defaults.
//  2. A JSON file given via -c/-config.
//  3. Environment variables (a .env file in the working directory is
//     loaded first when present), prefixed PHOTOCTL_.
//  4. Command-line flags.
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds.
package config
