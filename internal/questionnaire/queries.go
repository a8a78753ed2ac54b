package questionnaire

// Cypher for the two fixed traversal shapes and the batch upsert. All values
// are bound parameters; nothing is interpolated into the query text.
const (
	listApplicationsQuery = `
MATCH (app:Application)
RETURN app`

	// answeredQuestionsQuery returns one row per question that has an answer
	// relationship scoped to the requested application.
	answeredQuestionsQuery = `
MATCH (app:Application {uuid: $applicationUuid})-->(q:Question)
      -[qa:HAS_ANSWER {has_application_uuid: $applicationUuid}]->(ans:Answer)
RETURN app, q, qa, ans`

	// unansweredQuestionsQuery returns one row per question without such a
	// relationship. Disjoint with the answered set by construction.
	unansweredQuestionsQuery = `
MATCH (app:Application {uuid: $applicationUuid})-->(q:Question)
WHERE NOT (q)-[:HAS_ANSWER {has_application_uuid: $applicationUuid}]->()
RETURN app, q`

	// saveAnswersQuery merges one answer relationship per batch entry, keyed
	// by the (question uuid, application uuid) pair. Entries whose question
	// does not exist produce no row; the coordinator diffs the echoed uuids
	// against the batch to detect them.
	saveAnswersQuery = `
UNWIND $answers AS answer
MATCH (q:Question {uuid: answer.questionUuid})
MERGE (q)-[r:HAS_ANSWER {has_application_uuid: $applicationUuid}]->(a:Answer)
ON CREATE SET
    a.uuid = answer.answerUuid,
    a.answer = answer.answer,
    a.type = answer.type,
    a.created_at = $now,
    a.updated_at = $now,
    r.uuid = answer.relationshipUuid,
    r.created_at = $now,
    r.updated_at = $now
ON MATCH SET
    a.answer = answer.answer,
    a.type = answer.type,
    a.updated_at = $now,
    r.updated_at = $now
RETURN q.uuid AS questionUuid`
)
