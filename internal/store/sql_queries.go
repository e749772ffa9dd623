// SPDX-License-Identifier: Apache-2.0

package store

const (
	createProfile = `
		INSERT INTO profiles (
			id,
			email,
			first_name,
			last_name,
			phone,
			address,
			city,
			state,
			zip_code,
			created_at,
			last_sign_in
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, email, first_name, last_name, phone, address, city, state, zip_code, created_at, last_sign_in;`

	getProfileByID = `
		SELECT id, email, first_name, last_name, phone, address, city, state, zip_code, created_at, last_sign_in
		FROM profiles
		WHERE id = $1;`

	getProfileByEmail = `
		SELECT id, email, first_name, last_name, phone, address, city, state, zip_code, created_at, last_sign_in
		FROM profiles
		WHERE email = $1;`

	updateLastSignIn = `
		UPDATE profiles
		SET last_sign_in = $1
		WHERE id = $2;`
)
