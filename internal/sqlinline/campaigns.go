package sqlinline

// campaign columns, in scan order:
// id, title, description, community_id, organization_id, status, goal_amount,
// current_amount, beneficiary_count, items_needed, start_date, end_date,
// story_title, story_narrative, media_assets, views, shares, predicted_reach,
// predicted_funding, created_at, updated_at

const QListCampaigns = `--sql 1e467c60-d0a3-4df8-893b-2bb4ea6775a2
select id, title, description, community_id, organization_id, status, goal_amount,
       current_amount, beneficiary_count, items_needed, start_date, end_date,
       story_title, story_narrative, media_assets, views, shares, predicted_reach,
       predicted_funding, created_at, updated_at
from campaigns
where ($1::text = '' or status = $1::text)
order by id
limit $2::int offset $3::int;
`

const QListActiveCampaigns = `--sql bdd71652-2136-436d-af79-a872042a25e3
select id, title, description, community_id, organization_id, status, goal_amount,
       current_amount, beneficiary_count, items_needed, start_date, end_date,
       story_title, story_narrative, media_assets, views, shares, predicted_reach,
       predicted_funding, created_at, updated_at
from campaigns
where status = 'active'
order by id;
`

const QSelectCampaignByID = `--sql b1d8773d-f3f2-46e6-bc22-cc18041d280a
select id, title, description, community_id, organization_id, status, goal_amount,
       current_amount, beneficiary_count, items_needed, start_date, end_date,
       story_title, story_narrative, media_assets, views, shares, predicted_reach,
       predicted_funding, created_at, updated_at
from campaigns
where id = $1::bigint
limit 1;
`

const QInsertCampaign = `--sql f110b578-3769-4900-98ac-a7b9eeab0145
insert into campaigns (
  title, description, story_title, story_narrative, goal_amount, beneficiary_count,
  items_needed, community_id, organization_id, start_date, end_date, status, created_at, updated_at
) values (
  $1::text, $2::text, $3::text, $4::text, $5::float8, $6::int,
  coalesce($7::jsonb, '{}'::jsonb), $8::bigint, $9::bigint, $10::timestamptz, $11::timestamptz, 'draft', now(), now()
)
returning id, title, description, community_id, organization_id, status, goal_amount,
          current_amount, beneficiary_count, items_needed, start_date, end_date,
          story_title, story_narrative, media_assets, views, shares, predicted_reach,
          predicted_funding, created_at, updated_at;
`

const QUpdateCampaign = `--sql d8a2118f-0003-4f63-a4a4-4396ec336765
update campaigns set
  title           = coalesce($2::text, title),
  description     = coalesce($3::text, description),
  status          = coalesce($4::text, status),
  story_narrative = coalesce($5::text, story_narrative),
  goal_amount     = coalesce($6::float8, goal_amount),
  items_needed    = coalesce($7::jsonb, items_needed),
  updated_at      = now()
where id = $1::bigint
returning id, title, description, community_id, organization_id, status, goal_amount,
          current_amount, beneficiary_count, items_needed, start_date, end_date,
          story_title, story_narrative, media_assets, views, shares, predicted_reach,
          predicted_funding, created_at, updated_at;
`

const QIncrementCampaignViews = `--sql 38dfc8ee-957d-469b-a1f7-576236ebe5e9
update campaigns set views = views + 1
where id = $1::bigint
returning id, title, description, community_id, organization_id, status, goal_amount,
          current_amount, beneficiary_count, items_needed, start_date, end_date,
          story_title, story_narrative, media_assets, views, shares, predicted_reach,
          predicted_funding, created_at, updated_at;
`

const QIncrementCampaignShares = `--sql 992ba9df-c009-408d-a4df-d1adb638eb09
update campaigns set shares = shares + 1
where id = $1::bigint
returning id, title, description, community_id, organization_id, status, goal_amount,
          current_amount, beneficiary_count, items_needed, start_date, end_date,
          story_title, story_narrative, media_assets, views, shares, predicted_reach,
          predicted_funding, created_at, updated_at;
`

const QPublishCampaign = `--sql 491c7ce9-9773-4811-bbf4-271eb1b00a79
update campaigns set status = 'active', updated_at = now()
where id = $1::bigint and status = 'draft'
returning id, title, description, community_id, organization_id, status, goal_amount,
          current_amount, beneficiary_count, items_needed, start_date, end_date,
          story_title, story_narrative, media_assets, views, shares, predicted_reach,
          predicted_funding, created_at, updated_at;
`

const QDeleteCampaign = `--sql ed48fbfc-188f-4d0b-9169-66b8b6e5f31b
delete from campaigns where id = $1::bigint;
`
