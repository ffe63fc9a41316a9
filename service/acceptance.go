package service

import (
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Create subject", func(a *biff.A) {
		resp := apiRequest("POST", "/subjects").
			WithBodyJson(JSON{
				"name": "Mathematics",
			}).Do()
		SaveExample(resp, "Create subject", `
			Creates a subject. The id is assigned by the server and never
			reused, even after the subject is removed.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"id":   0,
			"name": "Mathematics",
		})

		a.Alternative("Retrieve subject", func(a *biff.A) {
			resp := apiRequest("GET", "/subjects/0").Do()
			SaveExample(resp, "Retrieve subject", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"id":   0,
				"name": "Mathematics",
			})
		})

		a.Alternative("List subjects", func(a *biff.A) {
			resp := apiRequest("GET", "/subjects").Do()
			SaveExample(resp, "List subjects", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{
				{"id": 0, "name": "Mathematics"},
			})
		})

		a.Alternative("Update subject", func(a *biff.A) {
			resp := apiRequest("PUT", "/subjects/0").
				WithBodyJson(JSON{
					"id":   33, // ignored, the path wins
					"name": "Algebra",
				}).Do()
			SaveExample(resp, "Update subject", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"id":   0,
				"name": "Algebra",
			})
		})

		a.Alternative("Patch subject", func(a *biff.A) {
			resp := apiRequest("PATCH", "/subjects/0").
				WithBodyJson(JSON{
					"name": "Geometry",
				}).Do()
			SaveExample(resp, "Patch subject", `
				Sets the given fields. Keys are paths like "name".
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"id":   0,
				"name": "Geometry",
			})
		})

		a.Alternative("Retrieve subject field", func(a *biff.A) {
			resp := apiRequest("GET", "/subjects/0/fields/name").Do()
			SaveExample(resp, "Retrieve subject field", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), "Mathematics")
		})

		a.Alternative("Retrieve unknown subject field", func(a *biff.A) {
			resp := apiRequest("GET", "/subjects/0/fields/room").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Update subject with empty name", func(a *biff.A) {
			resp := apiRequest("PUT", "/subjects/0").
				WithBodyJson(JSON{
					"name": "  ",
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Delete subject", func(a *biff.A) {
			resp := apiRequest("DELETE", "/subjects/0").Do()
			SaveExample(resp, "Delete subject", `
				Removes the subject and every link that references it.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			a.Alternative("Retrieve deleted subject", func(a *biff.A) {
				resp := apiRequest("GET", "/subjects/0").Do()
				SaveExample(resp, "Retrieve subject - not found", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"error": JSON{
						"message":     "subject not found",
						"description": "subject '0' does not exist",
					},
				})
			})

			a.Alternative("Delete it again", func(a *biff.A) {
				resp := apiRequest("DELETE", "/subjects/0").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Ids are not reused", func(a *biff.A) {
				resp := apiRequest("POST", "/subjects").
					WithBodyJson(JSON{
						"name": "Physics",
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusCreated)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"id":   1,
					"name": "Physics",
				})
			})
		})

		a.Alternative("Find subjects", func(a *biff.A) {
			apiRequest("POST", "/subjects").WithBodyJson(JSON{"name": "History"}).Do()
			apiRequest("POST", "/subjects").WithBodyJson(JSON{"name": "Mathematics"}).Do()

			a.Alternative("By filter", func(a *biff.A) {
				resp := apiRequest("POST", "/subjects:find").
					WithBodyJson(JSON{
						"filter": JSON{
							"id": JSON{"$gte": 1},
						},
					}).Do()
				SaveExample(resp, "Find subjects by filter", `
					Mongo like filter over the stored fields.
				`)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"id": 1, "name": "History"},
					{"id": 2, "name": "Mathematics"},
				})
			})

			a.Alternative("By example", func(a *biff.A) {
				resp := apiRequest("POST", "/subjects:find").
					WithBodyJson(JSON{
						"example": JSON{
							"name": "Mathematics",
						},
					}).Do()
				SaveExample(resp, "Find subjects by example", `
					Returns every subject equal to the example. Ids are not
					compared.
				`)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"id": 0, "name": "Mathematics"},
					{"id": 2, "name": "Mathematics"},
				})
			})

			a.Alternative("With filter and example", func(a *biff.A) {
				resp := apiRequest("POST", "/subjects:find").
					WithBodyJson(JSON{
						"filter":  JSON{"name": "History"},
						"example": JSON{"name": "History"},
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("With unknown operator", func(a *biff.A) {
				resp := apiRequest("POST", "/subjects:find").
					WithBodyJson(JSON{
						"filter": JSON{
							"name": JSON{"$nope": 1},
						},
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})
		})
	})

	a.Alternative("Create subject with empty name", func(a *biff.A) {
		resp := apiRequest("POST", "/subjects").
			WithBodyJson(JSON{
				"name": "",
			}).Do()
		SaveExample(resp, "Create subject - empty name", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "name must not be empty",
				"description": "invalid input",
			},
		})
	})

	a.Alternative("Create subject with malformed body", func(a *biff.A) {
		resp := apiRequest("POST", "/subjects").
			WithBodyString(`{"name": `).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Retrieve subject with malformed id", func(a *biff.A) {
		resp := apiRequest("GET", "/subjects/first").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Create group", func(a *biff.A) {
		resp := apiRequest("POST", "/groups").
			WithBodyJson(JSON{
				"name": "CS-21",
			}).Do()
		SaveExample(resp, "Create group", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"id":   0,
			"name": "CS-21",
		})

		a.Alternative("List groups", func(a *biff.A) {
			resp := apiRequest("GET", "/groups").Do()
			SaveExample(resp, "List groups", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{
				{"id": 0, "name": "CS-21"},
			})
		})

		a.Alternative("Link group with unknown subject", func(a *biff.A) {
			resp := apiRequest("POST", "/links").
				WithBodyJson(JSON{
					"groupId":   0,
					"subjectId": 7,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Link group with subject", func(a *biff.A) {
			apiRequest("POST", "/subjects").WithBodyJson(JSON{"name": "Mathematics"}).Do()

			resp := apiRequest("POST", "/links").
				WithBodyJson(JSON{
					"groupId":   0,
					"subjectId": 0,
				}).Do()
			SaveExample(resp, "Create link", `
				Links a group with a subject. Both must exist and a pair can
				only be linked once.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"id":        0,
				"groupId":   0,
				"subjectId": 0,
			})

			a.Alternative("Link them twice", func(a *biff.A) {
				resp := apiRequest("POST", "/links").
					WithBodyJson(JSON{
						"groupId":   0,
						"subjectId": 0,
					}).Do()
				SaveExample(resp, "Create link - already linked", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusConflict)
			})

			a.Alternative("List links", func(a *biff.A) {
				resp := apiRequest("GET", "/links").Do()
				SaveExample(resp, "List links", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"id": 0, "groupId": 0, "subjectId": 0},
				})
			})

			a.Alternative("Subjects of group", func(a *biff.A) {
				resp := apiRequest("GET", "/groups/0/subjects").Do()
				SaveExample(resp, "Subjects of group", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"id": 0, "name": "Mathematics"},
				})
			})

			a.Alternative("Groups of subject", func(a *biff.A) {
				resp := apiRequest("GET", "/subjects/0/groups").Do()
				SaveExample(resp, "Groups of subject", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"id": 0, "name": "CS-21"},
				})
			})

			a.Alternative("Groups of unknown subject", func(a *biff.A) {
				resp := apiRequest("GET", "/subjects/5/groups").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Delete link", func(a *biff.A) {
				resp := apiRequest("DELETE", "/links/0").Do()
				SaveExample(resp, "Delete link", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

				resp = apiRequest("GET", "/groups/0/subjects").Do()
				biff.AssertEqualJson(resp.BodyJson(), []JSON{})
			})

			a.Alternative("Delete group", func(a *biff.A) {
				resp := apiRequest("DELETE", "/groups/0").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

				resp = apiRequest("GET", "/links").Do()
				biff.AssertEqualJson(resp.BodyJson(), []JSON{})
			})
		})
	})

	a.Alternative("Save storage", func(a *biff.A) {
		apiRequest("POST", "/subjects").WithBodyJson(JSON{"name": "Mathematics"}).Do()

		resp := apiRequest("POST", "/storage:save").Do()
		SaveExample(resp, "Save storage", `
			Writes a new snapshot for every record type and returns the
			written file per type.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		written := resp.BodyJsonMap()
		biff.AssertEqual(len(written), 3)
		biff.AssertNotNil(written["Subject"])
		biff.AssertNotNil(written["GroupStudents"])
		biff.AssertNotNil(written["LinkGroupSubject"])

		a.Alternative("List snapshots", func(a *biff.A) {
			resp := apiRequest("GET", "/storage/snapshots").Do()
			SaveExample(resp, "List snapshots", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			snapshots := resp.BodyJsonMap()
			biff.AssertEqual(len(snapshots), 3)
			biff.AssertEqual(len(snapshots["Subject"].([]interface{})), 1)
		})
	})
}
