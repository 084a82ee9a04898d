package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUnderscores_Table(t *testing.T) {
	// GIVEN: table-driven inputs/outputs
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"two-words", "CustomerOrder", "CUSTOMER_ORDER"},
		{"three-words", "CustomerOrderLine", "CUSTOMER_ORDER_LINE"},
		{"lower-camel", "orderId", "ORDER_ID"},
		{"acronym-too-short", "ID", "ID"},
		{"single", "a", "A"},
		{"empty", "", ""},
		{"minimal-boundary", "aBc", "A_BC"},
		{"acronym-prefix", "HTTPServer", "HTTPSERVER"},
		{"acronym-xml", "XMLParser", "XMLPARSER"},
		{"trailing-capital", "orderI", "ORDERI"},
		{"already-physical", "CUSTOMER_ORDER", "CUSTOMER_ORDER"},
		{"sharp-s", "straße", "STRASSE"},
	}

	// WHEN/THEN: loop & assert
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, AddUnderscores(tc.in))
		})
	}
}

func TestAddUnderscores_Idempotent(t *testing.T) {
	for _, in := range []string{"CustomerOrder", "orderId", "aBcDeF", "HTTPServerConfig", "x"} {
		once := AddUnderscores(in)
		assert.Equal(t, once, AddUnderscores(once), in)
	}
}

func TestTableNameFor(t *testing.T) {
	got, err := TableNameFor("CustomerOrder")
	require.NoError(t, err)
	assert.Equal(t, "T_CUSTOMER_ORDER", got)

	got, err = TableNameWithPattern("{}_TAB", "User")
	require.NoError(t, err)
	assert.Equal(t, "USER_TAB", got)

	got, err = TableNameWithPattern("", "User")
	require.NoError(t, err)
	assert.Equal(t, "T_USER", got)
}

func TestTableNameWithPattern_NeedsOnePlaceholder(t *testing.T) {
	for _, pattern := range []string{"T_", "{}_{}", "T_{ }"} {
		_, err := TableNameWithPattern(pattern, "User")
		assert.ErrorIs(t, err, ErrNamingResolution, pattern)
		assert.ErrorIs(t, CheckTablePattern(pattern), ErrNamingResolution, pattern)
	}
	assert.NoError(t, CheckTablePattern(""))
	assert.NoError(t, CheckTablePattern("APP_{}_TBL"))
}

func TestTableNameFor_BlankIsFatal(t *testing.T) {
	for _, in := range []string{"", "   "} {
		_, err := TableNameFor(in)
		assert.ErrorIs(t, err, ErrNamingResolution)
	}
}

func TestStandardRules(t *testing.T) {
	assert.Equal(t, "Order", Unqualify("models.Order"))
	assert.Equal(t, "Order", Unqualify("Order"))
	assert.Equal(t, "customer_order", ClassToTableName("models.CustomerOrder"))
	assert.Equal(t, "is_deleted", ColumnNameFor("IsDeleted"))
	assert.Equal(t, "order_no", ColumnNameFor("order.OrderNo"))
	assert.Equal(t, "id", ColumnNameFor("ID"))
}

func TestForeignKeyColumnName(t *testing.T) {
	got, err := ForeignKeyColumnName("customer", "Customer", "t_customer", "id")
	require.NoError(t, err)
	assert.Equal(t, "customer_id", got)

	got, err = ForeignKeyColumnName("order.billingAccount", "Account", "t_account", "uuid")
	require.NoError(t, err)
	assert.Equal(t, "billing_account_uuid", got)

	got, err = ForeignKeyColumnName("", "Account", "t_account", "id")
	require.NoError(t, err)
	assert.Equal(t, "t_account_id", got)

	got, err = ForeignKeyColumnName("", "Customer", "app.t_customer", "id")
	require.NoError(t, err)
	assert.Equal(t, "app_t_customer_id", got)

	_, err = ForeignKeyColumnName("", "Account", "", "id")
	assert.ErrorIs(t, err, ErrNamingResolution)
}

func TestNormalizeName_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"empty", "", ""},
		{"spaces-only", "   ", ""},
		{"single", "a", "A"},
		{"caps-ok", "Ahmed", "Ahmed"},
		{"mixed+spaces", "  aHMED  ", "AHMED"},
		{"unicode-first", "émile", "Émile"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, NormalizeName(tc.in))
		})
	}
}
