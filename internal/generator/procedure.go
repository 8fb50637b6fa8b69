package generator

import (
	"github.com/oraschemagen/oraschemagen/internal/types"
)

type ProcedureGenerator struct{}

func NewProcedureGenerator() *ProcedureGenerator { return &ProcedureGenerator{} }

func (g *ProcedureGenerator) Name() string { return "procedure" }

func (g *ProcedureGenerator) Generate(tables []*types.TableSpec, req Request) []*types.SQLObject {
	return emitTemplates(procedureTemplates, includedTables(tables), req.Procedures)
}

var procedureTemplates = []plsqlTemplate{
	{
		name: "HIRE_EMPLOYEE",
		kind: types.KindProcedure,
		deps: []string{"EMPLOYEES", "DEPARTMENTS", "JOBS"},
		body: `CREATE OR REPLACE PROCEDURE HIRE_EMPLOYEE(
  p_first_name    IN EMPLOYEES.FIRST_NAME%TYPE,
  p_last_name     IN EMPLOYEES.LAST_NAME%TYPE,
  p_email         IN EMPLOYEES.EMAIL%TYPE,
  p_job_id        IN JOBS.JOB_ID%TYPE,
  p_department_id IN DEPARTMENTS.DEPARTMENT_ID%TYPE,
  p_salary        IN EMPLOYEES.SALARY%TYPE,
  p_employee_id   OUT EMPLOYEES.EMPLOYEE_ID%TYPE
) AS
BEGIN
  INSERT INTO EMPLOYEES (EMPLOYEE_ID, FIRST_NAME, LAST_NAME, EMAIL, HIRE_DATE, JOB_ID, SALARY, DEPARTMENT_ID)
  VALUES (EMPLOYEES_SEQ.NEXTVAL, p_first_name, p_last_name, p_email, SYSDATE, p_job_id, p_salary, p_department_id)
  RETURNING EMPLOYEE_ID INTO p_employee_id;
  COMMIT;
END HIRE_EMPLOYEE;
/`,
	},
	{
		name: "TRANSFER_EMPLOYEE",
		kind: types.KindProcedure,
		deps: []string{"EMPLOYEES", "DEPARTMENTS"},
		body: `CREATE OR REPLACE PROCEDURE TRANSFER_EMPLOYEE(
  p_employee_id   IN EMPLOYEES.EMPLOYEE_ID%TYPE,
  p_department_id IN DEPARTMENTS.DEPARTMENT_ID%TYPE
) AS
  l_exists NUMBER;
BEGIN
  SELECT COUNT(*) INTO l_exists FROM DEPARTMENTS WHERE DEPARTMENT_ID = p_department_id;
  IF l_exists = 0 THEN
    RAISE_APPLICATION_ERROR(-20010, 'Unknown department ' || p_department_id);
  END IF;
  UPDATE EMPLOYEES SET DEPARTMENT_ID = p_department_id WHERE EMPLOYEE_ID = p_employee_id;
  COMMIT;
END TRANSFER_EMPLOYEE;
/`,
	},
	{
		name: "CREATE_ORDER",
		kind: types.KindProcedure,
		deps: []string{"ORDERS", "CUSTOMERS"},
		body: `CREATE OR REPLACE PROCEDURE CREATE_ORDER(
  p_customer_id IN CUSTOMERS.CUSTOMER_ID%TYPE,
  p_order_id    OUT ORDERS.ORDER_ID%TYPE
) AS
BEGIN
  INSERT INTO ORDERS (ORDER_ID, CUSTOMER_ID, STATUS, ORDER_DATE, ORDER_TOTAL)
  VALUES (ORDERS_SEQ.NEXTVAL, p_customer_id, 'PENDING', SYSDATE, 0)
  RETURNING ORDER_ID INTO p_order_id;
  COMMIT;
END CREATE_ORDER;
/`,
	},
	{
		name: "ADD_ORDER_ITEM",
		kind: types.KindProcedure,
		deps: []string{"ORDERS", "ORDER_ITEMS", "PRODUCTS"},
		body: `CREATE OR REPLACE PROCEDURE ADD_ORDER_ITEM(
  p_order_id   IN ORDERS.ORDER_ID%TYPE,
  p_product_id IN PRODUCTS.PRODUCT_ID%TYPE,
  p_quantity   IN ORDER_ITEMS.QUANTITY%TYPE
) AS
  l_price PRODUCTS.LIST_PRICE%TYPE;
BEGIN
  SELECT LIST_PRICE INTO l_price FROM PRODUCTS WHERE PRODUCT_ID = p_product_id;
  INSERT INTO ORDER_ITEMS (ORDER_ID, PRODUCT_ID, UNIT_PRICE, QUANTITY, LINE_TOTAL)
  VALUES (p_order_id, p_product_id, l_price, p_quantity, l_price * p_quantity);
  COMMIT;
END ADD_ORDER_ITEM;
/`,
	},
	{
		name: "PURGE_OLD_DATA",
		kind: types.KindProcedure,
		deps: []string{"ORDERS", "ORDER_ITEMS"},
		body: `CREATE OR REPLACE PROCEDURE PURGE_OLD_DATA(
  p_days_kept  IN NUMBER DEFAULT 730,
  p_batch_size IN NUMBER DEFAULT 1000
) AS
  l_deleted NUMBER := 0;
BEGIN
  LOOP
    DELETE FROM ORDER_ITEMS
     WHERE ORDER_ID IN (SELECT ORDER_ID FROM ORDERS WHERE ORDER_DATE < SYSDATE - p_days_kept)
       AND ROWNUM <= p_batch_size;
    l_deleted := SQL%ROWCOUNT;
    COMMIT;
    EXIT WHEN l_deleted = 0;
  END LOOP;
  DELETE FROM ORDERS WHERE ORDER_DATE < SYSDATE - p_days_kept;
  COMMIT;
END PURGE_OLD_DATA;
/`,
	},
}
