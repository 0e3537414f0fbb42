// Package domain defines the display data model and the contracts shared
// across the app. It contains plain value types and interfaces only; the
// classification logic lives under internal/services.
package domain
