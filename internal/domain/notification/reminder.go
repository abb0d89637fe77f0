package notification

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/utilibill/backend/internal/domain/billing"
	"github.com/utilibill/backend/internal/domain/shared"
	"github.com/utilibill/backend/internal/domain/shared/valueobject"
)

const reminderDateLayout = "02 Jan 2006"

// BuildReminder synthesizes a payment reminder for an unpaid bill. When
// overrideMessage is non-empty it is used verbatim; otherwise a default
// message embedding the formatted amount and due date is generated. The
// title always carries the short bill reference so support staff can match
// a customer query to a bill without the full UUID.
func BuildReminder(bill *billing.Bill, overrideMessage string) (*Notification, error) {
	if bill == nil {
		return nil, shared.ErrNotFound
	}
	if bill.IsPaid {
		return nil, shared.ErrAlreadyPaid
	}

	title := fmt.Sprintf("Payment reminder · %s", bill.ShortRef())

	msg := overrideMessage
	if msg == "" {
		msg = fmt.Sprintf(
			"Your bill of %s is due on %s. Please pay before the due date to avoid disconnection.",
			FormatAmount(bill.AmountMoney()),
			bill.DueDate.Format(reminderDateLayout),
		)
	}

	billID := bill.ID
	return NewNotification(bill.CustomerID, &billID, title, msg)
}

// FormatAmount renders a money value with its currency symbol and digit
// grouping, e.g. "BDT 1,128.75". Falls back to the plain decimal string
// when the currency code is not a known ISO unit.
func FormatAmount(m valueobject.Money) string {
	unit, err := currency.ParseISO(string(m.Currency()))
	if err != nil {
		return m.StringFixed(2)
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(m.Float64())))
}
