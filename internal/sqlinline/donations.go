package sqlinline

// QRecordDonation credits the campaign, stores the donation and folds it into
// the donor's profile aggregates in one statement. No row comes back when the
// campaign does not exist.
const QRecordDonation = `--sql 6d06675d-a379-4b64-b282-5f4221a340aa
with c as (
  update campaigns set current_amount = current_amount + $2::float8, updated_at = now()
  where id = $1::bigint
  returning id
),
d as (
  insert into donations (campaign_id, donor_id, amount, currency, status, transaction_id, donor_message, is_anonymous, created_at)
  select c.id, $3::bigint, $2::float8, $4::text, 'completed', $5::text, $6::text, $7::bool, now()
  from c
  returning id, campaign_id, donor_id, amount, currency, status, transaction_id, donor_message, is_anonymous, created_at
),
p as (
  insert into donor_profiles (user_id, total_donated, donation_count, average_donation, last_donation_date, created_at, updated_at)
  select d.donor_id, d.amount, 1, d.amount, d.created_at, now(), now()
  from d
  where d.donor_id is not null
  on conflict (user_id) do update set
    total_donated      = donor_profiles.total_donated + excluded.total_donated,
    donation_count     = donor_profiles.donation_count + 1,
    average_donation   = (donor_profiles.total_donated + excluded.total_donated) / (donor_profiles.donation_count + 1),
    last_donation_date = excluded.last_donation_date,
    updated_at         = now()
)
select id, campaign_id, donor_id, amount, currency, status, transaction_id, donor_message, is_anonymous, created_at
from d;
`

const QListCampaignDonations = `--sql 958a7979-781f-4187-82f9-b5162cd248d9
select id, campaign_id, donor_id, amount, currency, status, transaction_id, donor_message, is_anonymous, created_at
from donations
where campaign_id = $1::bigint
order by created_at desc, id desc
limit $2::int;
`
