// Package services implements the driving ports: the pipeline stages, the
// similarity and analysis computations, run history and settings.
//
// Services only talk to infrastructure through the driven ports, so every
// stage can be tested against the in-memory adapters.
package services
