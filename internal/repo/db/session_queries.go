package db

const sessionCreateQ = `
INSERT INTO refresh_sessions 
	(id, user_id, device_id, family_id, current_token_hash, revoked, session_version, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const sessionGetByHashQ = `
SELECT 
	s.id,
	s.user_id,
	s.device_id,
	s.family_id,
	s.current_token_hash,
	s.revoked,
	s.session_version,
	s.expires_at,
	s.created_at,
	s.updated_at
FROM refresh_sessions s
WHERE s.current_token_hash = $1
`

const sessionGetByIDQ = `
SELECT 
	s.id,
	s.user_id,
	s.device_id,
	s.family_id,
	s.current_token_hash,
	s.revoked,
	s.session_version,
	s.expires_at,
	s.created_at,
	s.updated_at
FROM refresh_sessions s
WHERE s.id = $1
`

const sessionLockActiveByHashQ = `
SELECT 
	s.id,
	s.user_id,
	s.device_id,
	s.family_id,
	s.current_token_hash,
	s.revoked,
	s.session_version,
	s.expires_at,
	s.created_at,
	s.updated_at
FROM refresh_sessions s
WHERE s.current_token_hash = $1 AND s.revoked = false
FOR UPDATE
`

const sessionRotateQ = `
UPDATE refresh_sessions
SET current_token_hash = $1,
	expires_at = $2,
	updated_at = now()
WHERE id = $3
`

const sessionRevokeQ = `
UPDATE refresh_sessions
SET revoked = true,
	updated_at = now()
WHERE id = $1 AND revoked = false
`

const sessionRevokeFamilyQ = `
UPDATE refresh_sessions
SET revoked = true,
	updated_at = now()
WHERE family_id = $1 AND revoked = false
RETURNING id
`

const sessionRevokeAllQ = `
UPDATE refresh_sessions
SET revoked = true,
	session_version = session_version + 1,
	updated_at = now()
WHERE user_id = $1 AND revoked = false
RETURNING id
`

const sessionRevokeDeviceQ = `
UPDATE refresh_sessions
SET revoked = true,
	updated_at = now()
WHERE user_id = $1 AND device_id = $2 AND revoked = false
RETURNING id
`

const sessionListActiveQ = `
SELECT 
	s.id,
	s.user_id,
	s.device_id,
	s.family_id,
	s.current_token_hash,
	s.revoked,
	s.session_version,
	s.expires_at,
	s.created_at,
	s.updated_at
FROM refresh_sessions s
WHERE s.user_id = $1 AND s.revoked = false AND s.expires_at > now()
ORDER BY s.created_at DESC
`

const sessionDeleteRetiredQ = `
DELETE FROM refresh_sessions
WHERE (revoked = true AND updated_at < $1) OR expires_at < $1
`
