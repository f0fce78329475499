package sqlinline

// donor rows join users with their optional profile:
// u.id, u.email, u.full_name, u.role, u.is_active, u.created_at, u.updated_at,
// p.id, p.total_donated, p.donation_count, p.average_donation, p.causes,
// p.preferred_regions, p.budget_range, p.last_donation_date, p.created_at, p.updated_at

const QListDonors = `--sql 8348bf9b-6a97-41ba-ae90-824d66b6d63c
select u.id, u.email, u.full_name, u.role, u.is_active, u.created_at, u.updated_at,
       p.id, p.total_donated, p.donation_count, p.average_donation, p.causes,
       p.preferred_regions, p.budget_range, p.last_donation_date, p.created_at, p.updated_at
from users u
left join donor_profiles p on p.user_id = u.id
where u.role = 'donor'
order by u.id
limit $1::int offset $2::int;
`

const QSelectDonorByID = `--sql a79efeb4-9532-44b9-9ed0-2c3f3b38e1c6
select u.id, u.email, u.full_name, u.role, u.is_active, u.created_at, u.updated_at,
       p.id, p.total_donated, p.donation_count, p.average_donation, p.causes,
       p.preferred_regions, p.budget_range, p.last_donation_date, p.created_at, p.updated_at
from users u
left join donor_profiles p on p.user_id = u.id
where u.id = $1::bigint
limit 1;
`

const QUserExists = `--sql 356c05cf-3132-4c2d-96b8-c32377dea1c3
select exists (select 1 from users where id = $1::bigint);
`

const QSelectDonorProfile = `--sql b9ee04f4-b5bd-4f8b-8ebf-3c2263e8f1ad
select id, user_id, total_donated, donation_count, average_donation, causes,
       preferred_regions, budget_range, last_donation_date, created_at, updated_at
from donor_profiles
where user_id = $1::bigint
limit 1;
`

const QInsertDonor = `--sql dc9047d1-4305-489d-baad-05801e32325e
with u as (
  insert into users (email, full_name, role, is_active, created_at, updated_at)
  values ($1::text, $2::text, 'donor', true, now(), now())
  returning id, email, full_name, role, is_active, created_at, updated_at
),
p as (
  insert into donor_profiles (user_id, causes, preferred_regions, budget_range, created_at, updated_at)
  select u.id, coalesce($3::jsonb, '[]'::jsonb), coalesce($4::jsonb, '[]'::jsonb), $5::text, now(), now()
  from u
  returning id, user_id, total_donated, donation_count, average_donation, causes,
            preferred_regions, budget_range, last_donation_date, created_at, updated_at
)
select u.id, u.email, u.full_name, u.role, u.is_active, u.created_at, u.updated_at,
       p.id, p.total_donated, p.donation_count, p.average_donation, p.causes,
       p.preferred_regions, p.budget_range, p.last_donation_date, p.created_at, p.updated_at
from u join p on p.user_id = u.id;
`

const QUpsertDonorProfile = `--sql 5564b1ac-0cd2-4ed6-9b4a-a584aaed53ad
insert into donor_profiles (user_id, causes, preferred_regions, budget_range, created_at, updated_at)
values ($1::bigint, coalesce($2::jsonb, '[]'::jsonb), coalesce($3::jsonb, '[]'::jsonb), $4::text, now(), now())
on conflict (user_id) do update set
  causes            = coalesce($2::jsonb, donor_profiles.causes),
  preferred_regions = coalesce($3::jsonb, donor_profiles.preferred_regions),
  budget_range      = coalesce($4::text, donor_profiles.budget_range),
  updated_at        = now();
`
