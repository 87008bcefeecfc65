package store

import (
	"context"
	"testing"

	"github.com/shenikar/fire_ops_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoiceForIncident_Scenario(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	inc, err := s.CreateIncident(ctx, models.Incident{Type: "MVA", PropertyID: "prop-1"})
	require.NoError(t, err)
	_, err = s.CreateIncident(ctx, models.Incident{Type: "Structure Fire"})
	require.NoError(t, err)

	billable, err := s.GetBillableIncidents(ctx)
	require.NoError(t, err)
	require.Len(t, billable, 1)
	assert.Equal(t, inc.ID, billable[0].ID)

	inv, err := s.GenerateInvoiceForIncident(ctx, inc.ID)
	require.NoError(t, err)

	assert.Equal(t, models.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, 450.0, inv.TotalAmount)
	require.Len(t, inv.LineItems, 1)
	assert.Equal(t, "MVA Response", inv.LineItems[0].Description)
	assert.Equal(t, 450.0, inv.LineItems[0].Total)
	assert.Equal(t, "INV-2024-0001", inv.InvoiceNumber)
	assert.Equal(t, "prop-1", inv.PropertyID)
	assert.Equal(t, testNow.AddDate(0, 0, 30), inv.DueDate)

	billable, err = s.GetBillableIncidents(ctx)
	require.NoError(t, err)
	assert.Empty(t, billable)
}

func TestGenerateInvoiceForIncident_Errors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mva, err := s.CreateIncident(ctx, models.Incident{Type: "MVA"})
	require.NoError(t, err)
	fire, err := s.CreateIncident(ctx, models.Incident{Type: "Structure Fire"})
	require.NoError(t, err)
	_, err = s.GenerateInvoiceForIncident(ctx, mva.ID)
	require.NoError(t, err)

	_, err = s.GenerateInvoiceForIncident(ctx, mva.ID)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.GenerateInvoiceForIncident(ctx, fire.ID)
	assert.ErrorIs(t, err, ErrNotBillable)

	_, err = s.GenerateInvoiceForIncident(ctx, "inc-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateInvoiceStatus_PaidDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	inc, err := s.CreateIncident(ctx, models.Incident{Type: "Lift Assist"})
	require.NoError(t, err)
	inv, err := s.GenerateInvoiceForIncident(ctx, inc.ID)
	require.NoError(t, err)

	paid, err := s.UpdateInvoiceStatus(ctx, inv.ID, models.InvoiceStatusPaid, testNow)
	require.NoError(t, err)
	require.NotNil(t, paid.PaidDate)
	assert.Equal(t, testNow, *paid.PaidDate)

	voided, err := s.UpdateInvoiceStatus(ctx, inv.ID, models.InvoiceStatusVoid, testNow)
	require.NoError(t, err)
	assert.Nil(t, voided.PaidDate)

	_, err = s.UpdateInvoiceStatus(ctx, inv.ID, "Lost", testNow)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetFireDuesWithDetails_MissingPropertyFallback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner, err := s.CreateOwner(ctx, models.Owner{Name: "Ana Ruiz"})
	require.NoError(t, err)
	prop, err := s.CreateProperty(ctx, models.Property{ParcelID: "P-77", Address: "77 Lake Dr", OwnerIDs: []string{owner.ID}})
	require.NoError(t, err)
	_, err = s.CreateFireDue(ctx, models.FireDue{PropertyID: prop.ID, Amount: 150})
	require.NoError(t, err)
	_, err = s.CreateFireDue(ctx, models.FireDue{PropertyID: "prop-gone", Amount: 150})
	require.NoError(t, err)

	rows, err := s.GetFireDuesWithDetails(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "77 Lake Dr", rows[0].Address)
	assert.Equal(t, "P-77", rows[0].ParcelID)
	assert.Equal(t, "Ana Ruiz", rows[0].OwnerName)
	assert.Equal(t, 2024, rows[0].Year)

	assert.Equal(t, "N/A", rows[1].Address)
	assert.Equal(t, "N/A", rows[1].ParcelID)
	assert.Equal(t, "Unknown", rows[1].OwnerName)
}

func TestUpdateFireDue_PaymentDateInvariant(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	due, err := s.CreateFireDue(ctx, models.FireDue{PropertyID: "prop-1", Amount: 100})
	require.NoError(t, err)
	assert.Nil(t, due.PaymentDate)

	paid, err := s.UpdateFireDue(ctx, due.ID, models.FireDuePatch{Status: ptr(models.FireDueStatusPaid)})
	require.NoError(t, err)
	require.NotNil(t, paid.PaymentDate)
	assert.Equal(t, testNow, *paid.PaymentDate)

	reopened, err := s.UpdateFireDue(ctx, due.ID, models.FireDuePatch{Status: ptr(models.FireDueStatusOverdue)})
	require.NoError(t, err)
	assert.Nil(t, reopened.PaymentDate)

	_, err = s.UpdateFireDue(ctx, due.ID, models.FireDuePatch{Status: ptr("Waived")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBulkMarkFireDuesPaid(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a, err := s.CreateFireDue(ctx, models.FireDue{PropertyID: "prop-1", Amount: 100})
	require.NoError(t, err)
	b, err := s.CreateFireDue(ctx, models.FireDue{PropertyID: "prop-2", Amount: 100, Status: models.FireDueStatusOverdue})
	require.NoError(t, err)
	c, err := s.CreateFireDue(ctx, models.FireDue{PropertyID: "prop-3", Amount: 100})
	require.NoError(t, err)
	paidAt := testNow.AddDate(0, 0, -1)

	result, err := s.BulkMarkFireDuesPaid(ctx, []string{a.ID, b.ID, "due-404"}, paidAt)
	require.NoError(t, err)

	require.Len(t, result.Updated, 2)
	assert.Equal(t, []string{"due-404"}, result.Missing)
	for _, id := range []string{a.ID, b.ID} {
		got, _, err := s.GetFireDue(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.FireDueStatusPaid, got.Status)
		require.NotNil(t, got.PaymentDate)
		assert.Equal(t, paidAt, *got.PaymentDate)
	}
	untouched, _, err := s.GetFireDue(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FireDueStatusUnpaid, untouched.Status)
}

func TestGenerateAnnualDues_SkipsExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p1, err := s.CreateProperty(ctx, models.Property{ParcelID: "P-1"})
	require.NoError(t, err)
	p2, err := s.CreateProperty(ctx, models.Property{ParcelID: "P-2"})
	require.NoError(t, err)
	_, err = s.CreateFireDue(ctx, models.FireDue{PropertyID: p1.ID, Year: 2025, Amount: 120})
	require.NoError(t, err)

	created, err := s.GenerateAnnualDues(ctx, 2025, 150)
	require.NoError(t, err)

	require.Len(t, created, 1)
	assert.Equal(t, p2.ID, created[0].PropertyID)
	assert.Equal(t, 150.0, created[0].Amount)
	assert.Equal(t, models.FireDueStatusUnpaid, created[0].Status)
}

func TestBudget_TotalsFollowLineItems(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b, err := s.CreateBudget(ctx, 2024, []models.BudgetLineItem{
		{Category: "Personnel", BudgetedAmount: 500000, ActualAmount: 100000},
		{Category: "Apparatus", BudgetedAmount: 200000, ActualAmount: 50000},
	})
	require.NoError(t, err)
	assert.Equal(t, 700000.0, b.TotalBudget)
	assert.Equal(t, 150000.0, b.TotalSpent)

	b, err = s.AddBudgetLineItem(ctx, 2024, models.BudgetLineItem{Category: "Training", BudgetedAmount: 30000})
	require.NoError(t, err)
	assert.Equal(t, 730000.0, b.TotalBudget)
	trainingID := b.LineItems[2].ID

	b, err = s.RecordExpense(ctx, 2024, trainingID, 2500)
	require.NoError(t, err)
	assert.Equal(t, 152500.0, b.TotalSpent)

	b, err = s.UpdateBudgetLineItem(ctx, 2024, b.LineItems[0].ID, models.BudgetLineItemPatch{BudgetedAmount: ptr(450000.0)})
	require.NoError(t, err)
	assert.Equal(t, 680000.0, b.TotalBudget)

	b, err = s.DeleteBudgetLineItem(ctx, 2024, b.LineItems[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 480000.0, b.TotalBudget)
	assert.Equal(t, 102500.0, b.TotalSpent)

	stored, ok, err := s.GetBudget(ctx, 2024)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, b, stored)
}

func TestBudget_Errors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.CreateBudget(ctx, 2024, nil)
	require.NoError(t, err)

	_, err = s.CreateBudget(ctx, 2024, nil)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.RecordExpense(ctx, 2024, "bli-404", 10)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.AddBudgetLineItem(ctx, 1999, models.BudgetLineItem{Category: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}
