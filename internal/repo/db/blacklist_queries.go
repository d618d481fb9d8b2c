package db

const blacklistInsertQ = `
INSERT INTO refresh_token_blacklist (token_hash, user_id, session_id, expires_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (token_hash) DO NOTHING
`

const blacklistGetQ = `
SELECT 
	b.token_hash,
	b.user_id,
	b.session_id,
	b.expires_at,
	b.blacklisted_at
FROM refresh_token_blacklist b
WHERE b.token_hash = $1 AND b.expires_at > now()
`

const blacklistDeleteExpiredQ = `
DELETE FROM refresh_token_blacklist
WHERE expires_at < $1
`
