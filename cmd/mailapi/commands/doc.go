// Package commands defines the mailapi CLI.
//
// Commands
//
//   - send     Send a transactional email
//   - verify   Verify an email address
//   - add      Create a contact
//   - update   Overwrite properties of a contact
//   - delete   Delete a contact
//
// The API key is read from --api-key or MAILAPI_API_KEY. A .env file in the
// working directory is loaded first if one exists.
package commands
