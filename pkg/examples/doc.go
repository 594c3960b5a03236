// Package examples provides simulated camera node maps built on memmap.
//
// The examples show the node map shapes discovery has to handle:
//   - Category trees several levels deep
//   - Features multiplexed by an enumeration selector
//   - Selectors with a single entry
//   - Enumerations with entries disabled by the current device state
//   - Features locked while capturing, read-only, invisible or unavailable
//   - Features owned by the media pipeline (geometry, pixel format)
//
// Available examples:
//   - AreaScan: a color area-scan camera with gain, white balance and
//     trigger selectors
//   - Emulator: a minimal camera emulator
//
// ByName looks an example up by the name the CLI accepts.
package examples
