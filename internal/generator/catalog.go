package generator

import (
	"github.com/oraschemagen/oraschemagen/internal/types"
)

// The built-in table catalog models a small HR/commerce schema. Columns
// carrying a _JP suffix hold Japanese-locale text and drive the alternate
// synthesis branch.

func col(table, name, typ string, constraints ...string) types.ColumnSpec {
	return types.ColumnSpec{Table: table, Name: name, Type: typ, Constraints: constraints}
}

func tableCatalog() []*types.TableSpec {
	return []*types.TableSpec{
		{Name: "EMPLOYEES", Columns: []types.ColumnSpec{
			col("EMPLOYEES", "EMPLOYEE_ID", "NUMBER(6)", types.ConstraintPrimaryKey),
			col("EMPLOYEES", "FIRST_NAME", "VARCHAR2(20)"),
			col("EMPLOYEES", "LAST_NAME", "VARCHAR2(25)", types.ConstraintNotNull),
			col("EMPLOYEES", "FIRST_NAME_JP", "VARCHAR2(20)"),
			col("EMPLOYEES", "LAST_NAME_JP", "VARCHAR2(25)"),
			col("EMPLOYEES", "EMAIL", "VARCHAR2(25)", types.ConstraintUnique),
			col("EMPLOYEES", "PHONE_NUMBER", "VARCHAR2(20)"),
			col("EMPLOYEES", "HIRE_DATE", "DATE", types.ConstraintNotNull),
			col("EMPLOYEES", "JOB_ID", "VARCHAR2(10)", types.ConstraintNotNull),
			col("EMPLOYEES", "SALARY", "NUMBER(8,2)"),
			col("EMPLOYEES", "COMMISSION_PCT", "NUMBER(2,2)"),
			col("EMPLOYEES", "MANAGER_ID", "NUMBER(6)"),
			col("EMPLOYEES", "DEPARTMENT_ID", "NUMBER(4)"),
			col("EMPLOYEES", "NOTES_JP", "CLOB"),
		}},
		{Name: "DEPARTMENTS", Columns: []types.ColumnSpec{
			col("DEPARTMENTS", "DEPARTMENT_ID", "NUMBER(4)", types.ConstraintPrimaryKey),
			col("DEPARTMENTS", "DEPARTMENT_NAME", "VARCHAR2(30)", types.ConstraintNotNull),
			col("DEPARTMENTS", "DEPARTMENT_NAME_JP", "VARCHAR2(30)"),
			col("DEPARTMENTS", "MANAGER_ID", "NUMBER(6)"),
			col("DEPARTMENTS", "LOCATION_ID", "NUMBER(4)"),
			col("DEPARTMENTS", "DESCRIPTION_JP", "CLOB"),
		}},
		{Name: "JOBS", Columns: []types.ColumnSpec{
			col("JOBS", "JOB_ID", "VARCHAR2(10)", types.ConstraintPrimaryKey),
			col("JOBS", "JOB_TITLE", "VARCHAR2(35)", types.ConstraintNotNull),
			col("JOBS", "JOB_TITLE_JP", "VARCHAR2(35)"),
			col("JOBS", "MIN_SALARY", "NUMBER(6)"),
			col("JOBS", "MAX_SALARY", "NUMBER(6)"),
			col("JOBS", "JOB_DESCRIPTION", "CLOB"),
			col("JOBS", "JOB_DESCRIPTION_JP", "CLOB"),
		}},
		{Name: "LOCATIONS", Columns: []types.ColumnSpec{
			col("LOCATIONS", "LOCATION_ID", "NUMBER(4)", types.ConstraintPrimaryKey),
			col("LOCATIONS", "STREET_ADDRESS", "VARCHAR2(40)"),
			col("LOCATIONS", "STREET_ADDRESS_JP", "VARCHAR2(40)"),
			col("LOCATIONS", "POSTAL_CODE", "VARCHAR2(12)"),
			col("LOCATIONS", "CITY", "VARCHAR2(30)", types.ConstraintNotNull),
			col("LOCATIONS", "CITY_JP", "VARCHAR2(30)"),
			col("LOCATIONS", "STATE_PROVINCE", "VARCHAR2(25)"),
			col("LOCATIONS", "STATE_PROVINCE_JP", "VARCHAR2(25)"),
			col("LOCATIONS", "COUNTRY_ID", "CHAR(2)"),
		}},
		{Name: "PRODUCTS", Columns: []types.ColumnSpec{
			col("PRODUCTS", "PRODUCT_ID", "NUMBER(6)", types.ConstraintPrimaryKey),
			col("PRODUCTS", "PRODUCT_NAME", "VARCHAR2(50)", types.ConstraintNotNull),
			col("PRODUCTS", "PRODUCT_NAME_JP", "VARCHAR2(50)"),
			col("PRODUCTS", "DESCRIPTION", "VARCHAR2(2000)"),
			col("PRODUCTS", "DESCRIPTION_JP", "VARCHAR2(2000)"),
			col("PRODUCTS", "CATEGORY_ID", "NUMBER(4)"),
			col("PRODUCTS", "STANDARD_COST", "NUMBER(9,2)"),
			col("PRODUCTS", "LIST_PRICE", "NUMBER(9,2)"),
			col("PRODUCTS", "CREATED_DATE", "DATE"),
			col("PRODUCTS", "MODIFIED_DATE", "DATE"),
		}},
		{Name: "CUSTOMERS", Columns: []types.ColumnSpec{
			col("CUSTOMERS", "CUSTOMER_ID", "NUMBER(6)", types.ConstraintPrimaryKey),
			col("CUSTOMERS", "FIRST_NAME", "VARCHAR2(20)"),
			col("CUSTOMERS", "LAST_NAME", "VARCHAR2(25)", types.ConstraintNotNull),
			col("CUSTOMERS", "FIRST_NAME_JP", "VARCHAR2(20)"),
			col("CUSTOMERS", "LAST_NAME_JP", "VARCHAR2(25)"),
			col("CUSTOMERS", "EMAIL", "VARCHAR2(50)", types.ConstraintUnique),
			col("CUSTOMERS", "PHONE", "VARCHAR2(20)"),
			col("CUSTOMERS", "ADDRESS", "VARCHAR2(100)"),
			col("CUSTOMERS", "ADDRESS_JP", "VARCHAR2(100)"),
			col("CUSTOMERS", "CITY", "VARCHAR2(30)"),
			col("CUSTOMERS", "CITY_JP", "VARCHAR2(30)"),
			col("CUSTOMERS", "STATE", "VARCHAR2(20)"),
			col("CUSTOMERS", "STATE_JP", "VARCHAR2(20)"),
			col("CUSTOMERS", "POSTAL_CODE", "VARCHAR2(10)"),
			col("CUSTOMERS", "COUNTRY", "VARCHAR2(20)"),
			col("CUSTOMERS", "COUNTRY_JP", "VARCHAR2(20)"),
			col("CUSTOMERS", "CREDIT_LIMIT", "NUMBER(9,2)"),
			col("CUSTOMERS", "REGISTRATION_DATE", "DATE"),
		}},
		{Name: "ORDERS", Columns: []types.ColumnSpec{
			col("ORDERS", "ORDER_ID", "NUMBER(12)", types.ConstraintPrimaryKey),
			col("ORDERS", "CUSTOMER_ID", "NUMBER(6)", types.ConstraintNotNull),
			col("ORDERS", "STATUS", "VARCHAR2(20)", types.ConstraintNotNull),
			col("ORDERS", "SALESPERSON_ID", "NUMBER(6)"),
			col("ORDERS", "ORDER_DATE", "DATE", types.ConstraintNotNull),
			col("ORDERS", "SHIPPING_DATE", "DATE"),
			col("ORDERS", "SHIPPING_ADDRESS", "VARCHAR2(255)"),
			col("ORDERS", "SHIPPING_ADDRESS_JP", "VARCHAR2(255)"),
			col("ORDERS", "SHIPPING_CITY", "VARCHAR2(30)"),
			col("ORDERS", "SHIPPING_CITY_JP", "VARCHAR2(30)"),
			col("ORDERS", "SHIPPING_STATE", "VARCHAR2(20)"),
			col("ORDERS", "SHIPPING_ZIP", "VARCHAR2(10)"),
			col("ORDERS", "SHIPPING_COUNTRY", "VARCHAR2(20)"),
			col("ORDERS", "PAYMENT_METHOD", "VARCHAR2(20)"),
			col("ORDERS", "ORDER_TOTAL", "NUMBER(10,2)"),
			col("ORDERS", "NOTES", "CLOB"),
			col("ORDERS", "NOTES_JP", "CLOB"),
		}},
		{Name: "ORDER_ITEMS", Columns: []types.ColumnSpec{
			col("ORDER_ITEMS", "ORDER_ID", "NUMBER(12)", types.ConstraintNotNull),
			col("ORDER_ITEMS", "PRODUCT_ID", "NUMBER(6)", types.ConstraintNotNull),
			col("ORDER_ITEMS", "UNIT_PRICE", "NUMBER(10,2)", types.ConstraintNotNull),
			col("ORDER_ITEMS", "QUANTITY", "NUMBER(8)", types.ConstraintNotNull),
			col("ORDER_ITEMS", "DISCOUNT_PERCENT", "NUMBER(4,2)"),
			col("ORDER_ITEMS", "LINE_TOTAL", "NUMBER(10,2)"),
			col("ORDER_ITEMS", "NOTES", "VARCHAR2(500)"),
			col("ORDER_ITEMS", "NOTES_JP", "VARCHAR2(500)"),
		}},
	}
}

type foreignKey struct {
	Name      string
	Table     string
	Column    string
	RefTable  string
	RefColumn string
}

var foreignKeys = []foreignKey{
	{"EMP_DEPT_FK", "EMPLOYEES", "DEPARTMENT_ID", "DEPARTMENTS", "DEPARTMENT_ID"},
	{"EMP_JOB_FK", "EMPLOYEES", "JOB_ID", "JOBS", "JOB_ID"},
	{"EMP_MANAGER_FK", "EMPLOYEES", "MANAGER_ID", "EMPLOYEES", "EMPLOYEE_ID"},
	{"DEPT_MGR_FK", "DEPARTMENTS", "MANAGER_ID", "EMPLOYEES", "EMPLOYEE_ID"},
	{"DEPT_LOC_FK", "DEPARTMENTS", "LOCATION_ID", "LOCATIONS", "LOCATION_ID"},
	{"ORD_CUST_FK", "ORDERS", "CUSTOMER_ID", "CUSTOMERS", "CUSTOMER_ID"},
	{"ORD_EMP_FK", "ORDERS", "SALESPERSON_ID", "EMPLOYEES", "EMPLOYEE_ID"},
	{"ORDITM_ORD_FK", "ORDER_ITEMS", "ORDER_ID", "ORDERS", "ORDER_ID"},
	{"ORDITM_PROD_FK", "ORDER_ITEMS", "PRODUCT_ID", "PRODUCTS", "PRODUCT_ID"},
}

type checkConstraint struct {
	Name      string
	Table     string
	Condition string
}

var checkConstraints = []checkConstraint{
	{"EMP_SALARY_MIN", "EMPLOYEES", "SALARY > 0"},
	{"JOB_SALARY_RANGE", "JOBS", "MIN_SALARY < MAX_SALARY"},
	{"ORDITM_QTY_MIN", "ORDER_ITEMS", "QUANTITY > 0"},
	{"PROD_PRICE_MIN", "PRODUCTS", "LIST_PRICE >= 0"},
}

// sequenceStarts overrides the default START WITH 1 for selected tables.
var sequenceStarts = map[string]struct {
	Start     int
	Increment int
}{
	"EMPLOYEES":   {1000, 1},
	"DEPARTMENTS": {100, 10},
	"LOCATIONS":   {1000, 100},
	"PRODUCTS":    {10000, 1},
	"ORDERS":      {10000, 1},
}

var tableComments = map[string]string{
	"EMPLOYEES":   "Contains employee information including Japanese name fields",
	"DEPARTMENTS": "Contains department information",
	"JOBS":        "Contains job information including salary ranges",
	"LOCATIONS":   "Office locations with bilingual address fields",
	"PRODUCTS":    "Product master data",
	"CUSTOMERS":   "Customer information table",
	"ORDERS":      "Order header information",
	"ORDER_ITEMS": "Order line items",
}
