package generator

import (
	"github.com/oraschemagen/oraschemagen/internal/types"
)

type FunctionGenerator struct{}

func NewFunctionGenerator() *FunctionGenerator { return &FunctionGenerator{} }

func (g *FunctionGenerator) Name() string { return "function" }

func (g *FunctionGenerator) Generate(tables []*types.TableSpec, req Request) []*types.SQLObject {
	return emitTemplates(functionTemplates, includedTables(tables), req.Functions)
}

var functionTemplates = []plsqlTemplate{
	{
		name: "GET_EMPLOYEE_FULL_NAME",
		kind: types.KindFunction,
		deps: []string{"EMPLOYEES"},
		body: `CREATE OR REPLACE FUNCTION GET_EMPLOYEE_FULL_NAME(
  p_employee_id IN EMPLOYEES.EMPLOYEE_ID%TYPE
) RETURN VARCHAR2 AS
  l_name VARCHAR2(100);
BEGIN
  SELECT FIRST_NAME || ' ' || LAST_NAME INTO l_name
    FROM EMPLOYEES WHERE EMPLOYEE_ID = p_employee_id;
  RETURN l_name;
EXCEPTION
  WHEN NO_DATA_FOUND THEN RETURN NULL;
END GET_EMPLOYEE_FULL_NAME;
/`,
	},
	{
		name: "GET_DEPARTMENT_HEADCOUNT",
		kind: types.KindFunction,
		deps: []string{"EMPLOYEES", "DEPARTMENTS"},
		body: `CREATE OR REPLACE FUNCTION GET_DEPARTMENT_HEADCOUNT(
  p_department_id IN DEPARTMENTS.DEPARTMENT_ID%TYPE
) RETURN NUMBER AS
  l_count NUMBER;
BEGIN
  SELECT COUNT(*) INTO l_count FROM EMPLOYEES WHERE DEPARTMENT_ID = p_department_id;
  RETURN l_count;
END GET_DEPARTMENT_HEADCOUNT;
/`,
	},
	{
		name: "GET_ORDER_TOTAL",
		kind: types.KindFunction,
		deps: []string{"ORDER_ITEMS"},
		body: `CREATE OR REPLACE FUNCTION GET_ORDER_TOTAL(
  p_order_id IN ORDER_ITEMS.ORDER_ID%TYPE
) RETURN NUMBER AS
  l_total NUMBER;
BEGIN
  SELECT NVL(SUM(LINE_TOTAL), 0) INTO l_total FROM ORDER_ITEMS WHERE ORDER_ID = p_order_id;
  RETURN l_total;
END GET_ORDER_TOTAL;
/`,
	},
	{
		name: "GET_CUSTOMER_CREDIT_STATUS",
		kind: types.KindFunction,
		deps: []string{"CUSTOMERS", "ORDERS"},
		body: `CREATE OR REPLACE FUNCTION GET_CUSTOMER_CREDIT_STATUS(
  p_customer_id IN CUSTOMERS.CUSTOMER_ID%TYPE
) RETURN VARCHAR2 AS
  l_limit CUSTOMERS.CREDIT_LIMIT%TYPE;
  l_open  NUMBER;
BEGIN
  SELECT CREDIT_LIMIT INTO l_limit FROM CUSTOMERS WHERE CUSTOMER_ID = p_customer_id;
  SELECT NVL(SUM(ORDER_TOTAL), 0) INTO l_open
    FROM ORDERS WHERE CUSTOMER_ID = p_customer_id AND STATUS NOT IN ('DELIVERED', 'CANCELLED');
  IF l_open > l_limit THEN
    RETURN 'OVER_LIMIT';
  END IF;
  RETURN 'OK';
END GET_CUSTOMER_CREDIT_STATUS;
/`,
	},
}
