// Package cli implements the interactive terminal client.
//
// The client maintains a session against the marine ERP and drives the
// usage-logging workflows from a read-eval-print loop:
//
//   - login / logout with locally persisted credentials, so a restart
//     continues the previous session without re-entering the password;
//   - a menu of service workflows gated by the roles carried in the
//     access token (equipment crew sees forklift, manlift and
//     scaffolding; energy crew sees electricity and water);
//   - an interactive form per workflow: pick a boat from the paginated
//     fleet list, enter the service quantities, review the computed
//     price and post the record.
package cli
