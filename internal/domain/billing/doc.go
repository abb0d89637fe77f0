// Package billing provides domain models for charging customers for metered
// utility consumption.
//
// This package implements the billing bounded context, which is responsible for:
//   - Issuing one bill per meter reading, priced by the tariff domain
//   - Tracking the bill lifecycle from issued to paid
//   - Recording the payment that settles a bill
//
// Key Aggregates:
//   - Bill: A charge against a customer for a single reading, with a due
//     date and a terminal paid state
//   - Payment: Immutable record of the amount that settled a bill
//
// Lifecycle events (BillIssued, BillPaid) are raised for in-process
// consumers; bills reference the metering and partner domains by ID only.
package billing
