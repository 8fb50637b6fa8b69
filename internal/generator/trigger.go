package generator

import (
	"github.com/oraschemagen/oraschemagen/internal/types"
)

type TriggerGenerator struct{}

func NewTriggerGenerator() *TriggerGenerator { return &TriggerGenerator{} }

func (g *TriggerGenerator) Name() string { return "trigger" }

func (g *TriggerGenerator) Generate(tables []*types.TableSpec, req Request) []*types.SQLObject {
	return emitTemplates(triggerTemplates, includedTables(tables), req.Triggers)
}

var triggerTemplates = []plsqlTemplate{
	{
		name: "EMPLOYEES_SALARY_CHK_TRG",
		kind: types.KindTrigger,
		deps: []string{"EMPLOYEES"},
		body: `-- Validates salary changes before they are applied
CREATE OR REPLACE TRIGGER EMPLOYEES_SALARY_CHK_TRG
BEFORE UPDATE OF SALARY ON EMPLOYEES
FOR EACH ROW
BEGIN
  IF :NEW.SALARY < :OLD.SALARY * 0.5 THEN
    RAISE_APPLICATION_ERROR(-20001, 'Salary cannot be reduced by more than 50 percent');
  END IF;
END;
/`,
	},
	{
		name: "EMPLOYEES_EMAIL_TRG",
		kind: types.KindTrigger,
		deps: []string{"EMPLOYEES"},
		body: `-- Normalizes email addresses to upper case on insert
CREATE OR REPLACE TRIGGER EMPLOYEES_EMAIL_TRG
BEFORE INSERT ON EMPLOYEES
FOR EACH ROW
BEGIN
  :NEW.EMAIL := UPPER(:NEW.EMAIL);
END;
/`,
	},
	{
		name: "DEPARTMENTS_BIU_TRG",
		kind: types.KindTrigger,
		deps: []string{"DEPARTMENTS"},
		body: `-- Assigns department ids from the backing sequence
CREATE OR REPLACE TRIGGER DEPARTMENTS_BIU_TRG
BEFORE INSERT ON DEPARTMENTS
FOR EACH ROW
WHEN (NEW.DEPARTMENT_ID IS NULL)
BEGIN
  SELECT DEPARTMENTS_SEQ.NEXTVAL INTO :NEW.DEPARTMENT_ID FROM DUAL;
END;
/`,
	},
	{
		name: "DEPARTMENTS_AUDIT_TRG",
		kind: types.KindTrigger,
		deps: []string{"DEPARTMENTS"},
		body: `-- Records department renames in the audit trail
CREATE OR REPLACE TRIGGER DEPARTMENTS_AUDIT_TRG
AFTER UPDATE OF DEPARTMENT_NAME ON DEPARTMENTS
FOR EACH ROW
BEGIN
  DBMS_OUTPUT.PUT_LINE('Department ' || :OLD.DEPARTMENT_ID || ' renamed to ' || :NEW.DEPARTMENT_NAME);
END;
/`,
	},
	{
		name: "ORDERS_UPD_TOTAL_TRG",
		kind: types.KindTrigger,
		deps: []string{"ORDERS", "ORDER_ITEMS"},
		body: `-- Keeps the order total in sync with its line items
CREATE OR REPLACE TRIGGER ORDERS_UPD_TOTAL_TRG
AFTER INSERT OR UPDATE OR DELETE ON ORDER_ITEMS
FOR EACH ROW
DECLARE
  l_order_id ORDER_ITEMS.ORDER_ID%TYPE := COALESCE(:NEW.ORDER_ID, :OLD.ORDER_ID);
BEGIN
  UPDATE ORDERS o
     SET o.ORDER_TOTAL = (SELECT NVL(SUM(LINE_TOTAL), 0) FROM ORDER_ITEMS i WHERE i.ORDER_ID = l_order_id)
   WHERE o.ORDER_ID = l_order_id;
END;
/`,
	},
	{
		name: "ORDERS_STATUS_CHK_TRG",
		kind: types.KindTrigger,
		deps: []string{"ORDERS"},
		body: `-- Rejects invalid order status transitions
CREATE OR REPLACE TRIGGER ORDERS_STATUS_CHK_TRG
BEFORE UPDATE OF STATUS ON ORDERS
FOR EACH ROW
BEGIN
  IF :OLD.STATUS = 'DELIVERED' AND :NEW.STATUS <> 'DELIVERED' THEN
    RAISE_APPLICATION_ERROR(-20002, 'Delivered orders cannot change status');
  END IF;
END;
/`,
	},
	{
		name: "PRODUCTS_PRICE_TRG",
		kind: types.KindTrigger,
		deps: []string{"PRODUCTS"},
		body: `-- Stamps the modification date whenever a price changes
CREATE OR REPLACE TRIGGER PRODUCTS_PRICE_TRG
BEFORE UPDATE OF LIST_PRICE ON PRODUCTS
FOR EACH ROW
BEGIN
  :NEW.MODIFIED_DATE := SYSDATE;
END;
/`,
	},
	{
		name: "CUSTOMERS_NORM_TRG",
		kind: types.KindTrigger,
		deps: []string{"CUSTOMERS"},
		body: `-- Normalizes customer contact fields on insert or update
CREATE OR REPLACE TRIGGER CUSTOMERS_NORM_TRG
BEFORE INSERT OR UPDATE ON CUSTOMERS
FOR EACH ROW
BEGIN
  :NEW.EMAIL := LOWER(TRIM(:NEW.EMAIL));
  :NEW.POSTAL_CODE := TRIM(:NEW.POSTAL_CODE);
END;
/`,
	},
}
