// Package domain defines core data models and interfaces shared across the
// app. It contains plain types (jobs, rates, receipt documents) and contracts
// (collaborator interfaces) only.
package domain
