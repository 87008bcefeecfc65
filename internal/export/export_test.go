package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "450.00", Money(450))
	assert.Equal(t, "0.10", Money(0.1))
	assert.Equal(t, "1234.57", Money(1234.567))
}

func TestCSV_QuotesEveryField(t *testing.T) {
	table := Table{
		Headers: []string{"Name", "Note"},
		Rows: [][]string{
			{"Engine 1", `Says "hi"`},
			{"", "a,b"},
		},
	}

	assert.Equal(t, "\"Name\",\"Note\"\n\"Engine 1\",\"Says \"\"hi\"\"\"\n\"\",\"a,b\"", table.CSV())
}

func TestCSV_HeaderOnly(t *testing.T) {
	table := Table{Headers: []string{"A"}}

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))
	assert.Equal(t, `"A"`, buf.String())
}

func TestFireDuesReport(t *testing.T) {
	paid := time.Date(2024, time.February, 3, 10, 0, 0, 0, time.UTC)
	rows := []models.FireDueWithDetails{
		{
			FireDue:   models.FireDue{ID: "due-1", Year: 2024, Amount: 150, Status: models.FireDueStatusPaid, PaymentDate: &paid},
			Address:   "7 Pine St",
			ParcelID:  "P-1",
			OwnerName: "Jane Roe",
		},
		{
			FireDue: models.FireDue{ID: "due-2", Year: 2023, Amount: 99.5, Status: models.FireDueStatusOverdue},
			Address: "N/A",
		},
	}

	table := FireDuesReport(rows)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"P-1", "7 Pine St", "Jane Roe", "2024", "150.00", "Paid", "2024-02-03"}, table.Rows[0])
	assert.Equal(t, "N/A", table.Rows[1][1])
	assert.Equal(t, "99.50", table.Rows[1][4])
	assert.Equal(t, "", table.Rows[1][6])
}

func TestIncidentsReport(t *testing.T) {
	incidents := []models.Incident{{
		IncidentNumber:         "2024-0001",
		Date:                   time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC),
		Type:                   "MVA",
		Address:                "Route 9",
		Status:                 models.IncidentStatusLocked,
		RespondingPersonnelIDs: []string{"p1", "p2"},
		RespondingApparatusIDs: []string{"e1"},
	}}

	table := IncidentsReport(incidents)

	assert.Equal(t, []string{"2024-0001", "2024-01-09", "MVA", "Route 9", "Locked", "2", "1", "0.00"}, table.Rows[0])
}

func TestInvoicesReport(t *testing.T) {
	invoices := []models.Invoice{{
		InvoiceNumber: "INV-2024-0001",
		IncidentID:    "inc-1",
		IssuedDate:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		LineItems:     []models.InvoiceLineItem{{Description: "MVA Response", Quantity: 1, Rate: 450, Total: 450}},
		TotalAmount:   450,
		Status:        models.InvoiceStatusDraft,
	}}

	table := InvoicesReport(invoices)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "450.00", table.Rows[0][6])
	assert.Equal(t, "MVA Response", table.Rows[0][8])
}

func TestWriteXLSX(t *testing.T) {
	table := Table{
		Headers: []string{"Year", "Amount"},
		Rows:    [][]string{{"2024", "150.00"}},
	}

	var buf bytes.Buffer
	require.NoError(t, table.WriteXLSX(&buf, "Fire Dues"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Fire Dues"}, f.GetSheetList())
	rows, err := f.GetRows("Fire Dues")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Year", "Amount"}, {"2024", "150.00"}}, rows)
}
