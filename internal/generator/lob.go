package generator

import (
	"github.com/oraschemagen/oraschemagen/internal/types"
)

// LobGenerator emits CLOB/BLOB helper routines. They operate on the CLOB
// and BLOB columns of the generated tables, so each declares the tables it
// touches.
type LobGenerator struct{}

func NewLobGenerator() *LobGenerator { return &LobGenerator{} }

func (g *LobGenerator) Name() string { return "lob" }

func (g *LobGenerator) Generate(tables []*types.TableSpec, req Request) []*types.SQLObject {
	return emitTemplates(lobTemplates, includedTables(tables), req.Lobs)
}

var lobTemplates = []plsqlTemplate{
	{
		name: "APPEND_TO_CLOB",
		kind: types.KindProcedure,
		deps: []string{"EMPLOYEES"},
		body: `CREATE OR REPLACE PROCEDURE APPEND_TO_CLOB(
  p_employee_id IN EMPLOYEES.EMPLOYEE_ID%TYPE,
  p_text        IN VARCHAR2
) AS
  l_clob CLOB;
BEGIN
  SELECT NOTES_JP INTO l_clob FROM EMPLOYEES WHERE EMPLOYEE_ID = p_employee_id FOR UPDATE;
  IF l_clob IS NULL THEN
    UPDATE EMPLOYEES SET NOTES_JP = EMPTY_CLOB() WHERE EMPLOYEE_ID = p_employee_id
    RETURNING NOTES_JP INTO l_clob;
  END IF;
  DBMS_LOB.WRITEAPPEND(l_clob, LENGTH(p_text), p_text);
  COMMIT;
END APPEND_TO_CLOB;
/`,
	},
	{
		name: "GET_CLOB_SUBSTRING",
		kind: types.KindFunction,
		deps: []string{"ORDERS"},
		body: `CREATE OR REPLACE FUNCTION GET_CLOB_SUBSTRING(
  p_order_id IN ORDERS.ORDER_ID%TYPE,
  p_length   IN NUMBER DEFAULT 200
) RETURN VARCHAR2 AS
  l_clob CLOB;
BEGIN
  SELECT NOTES INTO l_clob FROM ORDERS WHERE ORDER_ID = p_order_id;
  IF l_clob IS NULL OR DBMS_LOB.GETLENGTH(l_clob) = 0 THEN
    RETURN NULL;
  END IF;
  RETURN DBMS_LOB.SUBSTR(l_clob, LEAST(p_length, DBMS_LOB.GETLENGTH(l_clob)), 1);
END GET_CLOB_SUBSTRING;
/`,
	},
	{
		name: "SEARCH_CLOB",
		kind: types.KindFunction,
		deps: []string{"JOBS"},
		body: `CREATE OR REPLACE FUNCTION SEARCH_CLOB(
  p_job_id  IN JOBS.JOB_ID%TYPE,
  p_pattern IN VARCHAR2
) RETURN NUMBER AS
  l_clob CLOB;
BEGIN
  SELECT JOB_DESCRIPTION INTO l_clob FROM JOBS WHERE JOB_ID = p_job_id;
  IF l_clob IS NULL THEN
    RETURN 0;
  END IF;
  RETURN DBMS_LOB.INSTR(l_clob, p_pattern, 1, 1);
END SEARCH_CLOB;
/`,
	},
}
