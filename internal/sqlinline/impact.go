package sqlinline

const QInsertImpactMetric = `--sql 0b103970-045b-4987-b3ef-367830c26cfe
insert into impact_metrics (campaign_id, metric_type, value, unit, verified, verification_source, recorded_date, created_at)
select c.id, $2::text, $3::float8, $4::text, $5::bool, $6::text, coalesce($7::timestamptz, now()), now()
from campaigns c
where c.id = $1::bigint
returning id, campaign_id, metric_type, value, unit, verified, verification_source, recorded_date, created_at;
`

const QListImpactMetrics = `--sql 0a70ac46-6923-4d90-9731-799f29099cd0
select id, campaign_id, metric_type, value, unit, verified, verification_source, recorded_date, created_at
from impact_metrics
where campaign_id = $1::bigint
order by recorded_date desc, id desc;
`
