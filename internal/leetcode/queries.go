package leetcode

const kOperationName = "a"

const kQuestionDetailQuery = `
query a($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    title
    titleSlug
    questionId
    questionFrontendId
    categoryTitle
    content
    codeDefinition
    status
    metaData
    isPaidOnly
    exampleTestcases
    sampleTestCase
    enableRunCode
    stats
    translatedContent
    isFavor
    difficulty
  }
}
`

const kTopicTagQuery = `
query a($slug: String!) {
  topicTag(slug: $slug) {
    questions {
      questionId
    }
  }
}
`

const kUserQuery = `
query a {
  user {
    username
    isCurrentUserPremium
  }
}
`

const kDailyQuery = `
query a {
  activeDailyCodingChallengeQuestion {
    question {
      questionFrontendId
    }
  }
}
`
