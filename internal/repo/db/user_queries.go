package db

const userGetByIDQ = `
SELECT 
	u.id, 
	u.name, 
	u.email, 
	u.is_active,
	u.created_at, 
	u.updated_at
FROM users u
WHERE u.id = $1
`

const userGetByEmailQ = `
SELECT 
    u.id, 
    u.name, 
    u.email, 
    u.password,
	u.is_active,
    u.created_at, 
    u.updated_at
FROM users u
WHERE email = $1
`
