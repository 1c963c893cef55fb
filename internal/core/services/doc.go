// Package services implements the driving port interfaces.
// Services contain the conversion logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go and import only domain and ports.
package services
