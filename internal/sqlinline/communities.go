package sqlinline

// community columns, in scan order:
// id, name, country, region, district, latitude, longitude, population,
// girls_count, poverty_index, menstrual_health_score, school_enrollment_rate,
// health_facilities, description, data_quality_score, last_assessment_date,
// created_at, updated_at

const QListCommunities = `--sql b93b96eb-485f-453f-b514-29c206ef261d
select id, name, country, region, district, latitude, longitude, population,
       girls_count, poverty_index, menstrual_health_score, school_enrollment_rate,
       health_facilities, description, data_quality_score, last_assessment_date,
       created_at, updated_at
from communities
where ($1::text = '' or country = $1::text)
order by id
limit $2::int offset $3::int;
`

const QSelectCommunityByID = `--sql 40a97365-07de-431a-8b80-45d9f41680e9
select id, name, country, region, district, latitude, longitude, population,
       girls_count, poverty_index, menstrual_health_score, school_enrollment_rate,
       health_facilities, description, data_quality_score, last_assessment_date,
       created_at, updated_at
from communities
where id = $1::bigint
limit 1;
`

const QInsertCommunity = `--sql 4e0bd6f9-2b4f-4b80-9242-ed5258e0c593
insert into communities (
  name, country, region, district, latitude, longitude, population, girls_count,
  poverty_index, menstrual_health_score, school_enrollment_rate, description, created_at, updated_at
) values (
  $1::text, $2::text, $3::text, $4::text, $5::float8, $6::float8, $7::int, $8::int,
  $9::float8, $10::float8, $11::float8, $12::text, now(), now()
)
returning id, name, country, region, district, latitude, longitude, population,
          girls_count, poverty_index, menstrual_health_score, school_enrollment_rate,
          health_facilities, description, data_quality_score, last_assessment_date,
          created_at, updated_at;
`

const QUpdateCommunity = `--sql 26778844-9122-45d6-99e5-3bce2367e6f1
update communities set
  poverty_index          = coalesce($2::float8, poverty_index),
  menstrual_health_score = coalesce($3::float8, menstrual_health_score),
  school_enrollment_rate = coalesce($4::float8, school_enrollment_rate),
  last_assessment_date   = coalesce($5::timestamptz, last_assessment_date),
  updated_at             = now()
where id = $1::bigint
returning id, name, country, region, district, latitude, longitude, population,
          girls_count, poverty_index, menstrual_health_score, school_enrollment_rate,
          health_facilities, description, data_quality_score, last_assessment_date,
          created_at, updated_at;
`

const QDeleteCommunity = `--sql 695ff01c-7ccd-441e-b9c6-df858030b8b2
delete from communities where id = $1::bigint;
`
