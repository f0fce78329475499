package sqlinline

import _ "embed"

// Schema creates every table the service needs. It is idempotent.
//
//go:embed schema.sql
var Schema string

const QPing = `--sql 33524589-eabf-4cbf-a607-47b58bb62501
select 1;
`
