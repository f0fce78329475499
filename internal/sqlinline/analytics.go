package sqlinline

const QCountCommunities = `--sql 31e8c9cd-3c3f-47c9-ad98-d03f81ee082f
select count(*) from communities;
`

const QCountActiveCampaigns = `--sql beaa9850-ab6a-492c-8734-344aaa44c2c1
select count(*) from campaigns where status = 'active';
`

const QTotalFunding = `--sql 4bdf949a-13a8-48c6-827c-00df6fba2c5b
select coalesce(sum(amount), 0)::float8 from donations where status = 'completed';
`

const QSumImpactMetric = `--sql a6ad7160-0834-4987-97bc-321a57dfe71c
select coalesce(sum(value), 0)::float8 from impact_metrics where metric_type = $1::text;
`

const QAverageFundingRatio = `--sql 339c88a8-49f5-4a54-b84d-225d67a3e97e
select coalesce(avg(least(current_amount / goal_amount, 1.0)), 0)::float8
from campaigns
where goal_amount > 0 and status in ('active', 'completed');
`

const QTopDonors = `--sql 78ea8b38-1afd-4fd7-abd9-c1d878f74227
select u.id, u.full_name, sum(d.amount)::float8 as total, count(*)::int as donations
from donations d
join users u on u.id = d.donor_id
where d.status = 'completed' and not d.is_anonymous
group by u.id, u.full_name
order by total desc, u.id
limit $1::int;
`

const QTrendingCampaigns = `--sql eb6a2a54-a52b-4522-a141-5c68229b9bd9
select id, title, views, shares,
       case when goal_amount > 0 then current_amount / goal_amount else 0 end::float8 as funding_ratio
from campaigns
where status = 'active'
order by shares * 5 + views desc, id
limit $1::int;
`
