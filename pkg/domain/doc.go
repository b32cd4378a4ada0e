// Package domain contains the value types exchanged between the scan session
// core and its collaborators: decode outcomes, UI signals, notifications and
// scan records, plus the semantic error kinds of the scanning flow. The types
// are free of infrastructure concerns so every layer can share them.
package domain
