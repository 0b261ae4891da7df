// Package services implements the driving ports: the conversion
// dispatcher, the capability registry and the history and settings
// services. They depend only on domain types and driven ports.
package services
